package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/domain"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrTxReverted       = errors.New("transaction reverted")
)

const nativeTransferGas = 21000

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKeyHex signs every state-changing transaction the
	// marketplace sends: token transfers, payouts, swaps, dispatches.
	OperatorKeyHex string
}

type Client interface {
	// Call performs a read-only contract call.
	Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact sends a signed state-changing transaction and waits for
	// it to be mined. A reverted receipt surfaces as an error.
	Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error)
	// TransferNative moves native asset from the operator account.
	TransferNative(ctx bCtx.Ctx, chainId int32, to common.Address, amount *big.Int) (domain.TxHash, error)
	// Operator returns the marketplace operator address.
	Operator() common.Address
}

type clientImpl struct {
	clients  map[int32]*ethclient.Client
	key      *ecdsa.PrivateKey
	operator common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	key, err := crypto.HexToECDSA(cfg.OperatorKeyHex)
	if err != nil {
		ctx.WithField("err", err).Error("failed to parse operator key")
		return nil, err
	}

	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients:  clients,
		key:      key,
		operator: crypto.PubkeyToAddress(key.PublicKey),
	}, anyerr
}

func (c *clientImpl) Operator() common.Address {
	return c.operator
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		From: c.operator,
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}
	return c.send(ctx, chainId, addr, value, data)
}

func (c *clientImpl) TransferNative(ctx bCtx.Ctx, chainId int32, to common.Address, amount *big.Int) (domain.TxHash, error) {
	return c.send(ctx, chainId, to, amount, nil)
}

func (c *clientImpl) send(ctx bCtx.Ctx, chainId int32, to common.Address, value *big.Int, data []byte) (domain.TxHash, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}

	nonce, err := client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}

	gasLimit := uint64(nativeTransferGas)
	if len(data) > 0 {
		gasLimit, err = client.EstimateGas(ctx, ethereum.CallMsg{
			From:  c.operator,
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			ctx.WithField("err", err).Error("client.EstimateGas failed")
			return "", err
		}
	}

	tx := types.NewTransaction(nonce, to, value, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return "", err
	}

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signed.Hash().Hex(),
		}).Error("bind.WaitMined failed")
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("txHash", signed.Hash().Hex()).Error("transaction reverted")
		return domain.TxHash(signed.Hash().Hex()), ErrTxReverted
	}

	return domain.TxHash(signed.Hash().Hex()), nil
}
