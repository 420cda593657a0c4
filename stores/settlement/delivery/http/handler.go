package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/delivery"
	"github.com/crossmart/goapi/base/metrics"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/settlement"
	authMiddleware "github.com/crossmart/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	settlement settlement.UseCase
}

func New(e *echo.Echo, settlementUC settlement.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("settlement")

	h := &handler{settlementUC}

	g := e.Group("/settlement")

	g.POST("/buy", h.buy, authMiddleware.Auth())

	g.POST("/buy-crosschain", h.buyCrosschain, authMiddleware.Auth())

	// invoked by the bridge relay worker on message delivery
	g.POST("/bridge-receive", h.bridgeReceive, authMiddleware.Auth())

	g.GET("/receipt/:chainId/:srcChainId/:nonce", h.getReceipt)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	p := struct {
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		Payment    domain.Amount  `json:"payment" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("buy", 1)
	res, err := h.settlement.BuyLocal(ctx, p.ChainId, p.Collection, p.TokenId, buyer, p.Payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) buyCrosschain(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	p := struct {
		SrcChainId    domain.ChainId `json:"srcChainId" validate:"required"`
		DestChainId   domain.ChainId `json:"destChainId" validate:"required"`
		Collection    domain.Address `json:"collection" validate:"required"`
		TokenId       domain.TokenId `json:"tokenId" validate:"required"`
		NativePrice   domain.Amount  `json:"nativePrice" validate:"required"`
		AttachedValue domain.Amount  `json:"attachedValue" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("buyCrosschain", 1)
	if err := h.settlement.BuyCrosschain(ctx, p.SrcChainId, p.DestChainId, p.Collection, p.TokenId, buyer, p.NativePrice, p.AttachedValue); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, "dispatched")
}

func (h *handler) bridgeReceive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId      domain.ChainId `json:"chainId" validate:"required"`
		SrcChainId   domain.ChainId `json:"srcChainId" validate:"required"`
		SrcAddress   string         `json:"srcAddress" validate:"required"`
		Nonce        uint64         `json:"nonce"`
		StableAsset  domain.Address `json:"stableAsset" validate:"required"`
		StableAmount domain.Amount  `json:"stableAmount" validate:"required"`
		// abi-encoded purchase payload, 0x-prefixed
		Payload string `json:"payload" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payload, err := hexutil.Decode(p.Payload)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("bridgeReceive", 1)
	res, err := h.settlement.OnBridgeReceive(ctx, p.ChainId, caller, p.SrcChainId, p.SrcAddress, p.Nonce, p.StableAsset, p.StableAmount, payload)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getReceipt(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId    domain.ChainId `param:"chainId" validate:"required"`
		SrcChainId domain.ChainId `param:"srcChainId" validate:"required"`
		Nonce      uint64         `param:"nonce"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.settlement.GetReceipt(ctx, settlement.ReceiptId{
		ChainId:    p.ChainId,
		SrcChainId: p.SrcChainId,
		Nonce:      p.Nonce,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
