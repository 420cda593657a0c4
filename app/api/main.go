package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/database/mongoclient"
	"github.com/crossmart/goapi/base/log"
	"github.com/crossmart/goapi/base/metrics"
	bValidator "github.com/crossmart/goapi/base/validator"
	"github.com/crossmart/goapi/domain"
	mmiddleware "github.com/crossmart/goapi/middleware"
	"github.com/crossmart/goapi/service/bridge"
	"github.com/crossmart/goapi/service/chain"
	"github.com/crossmart/goapi/service/chain/contract"
	"github.com/crossmart/goapi/service/query"
	"github.com/crossmart/goapi/service/redis"
	"github.com/crossmart/goapi/service/swap"
	activity_delivery "github.com/crossmart/goapi/stores/activity/delivery/http"
	activity_repository "github.com/crossmart/goapi/stores/activity/repository"
	auth_delivery "github.com/crossmart/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/crossmart/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/crossmart/goapi/stores/auth/usecase"
	hc_delivery "github.com/crossmart/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/crossmart/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/crossmart/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/crossmart/goapi/stores/listing/delivery/http"
	listing_repository "github.com/crossmart/goapi/stores/listing/repository"
	listing_usecase "github.com/crossmart/goapi/stores/listing/usecase"
	marketplace_delivery "github.com/crossmart/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/crossmart/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/crossmart/goapi/stores/marketplace/usecase"
	settlement_delivery "github.com/crossmart/goapi/stores/settlement/delivery/http"
	settlement_repository "github.com/crossmart/goapi/stores/settlement/repository"
	settlement_usecase "github.com/crossmart/goapi/stores/settlement/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePool := redis.NewPool(redisCacheURI)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	swapRouters := make(map[domain.ChainId]domain.Address)
	bridgeRouters := make(map[domain.ChainId]domain.Address)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		if addr := networks.GetString(fmt.Sprintf("%s.swapRouter", k)); len(addr) > 0 {
			swapRouters[domain.ChainId(chainId)] = domain.Address(addr).ToLower()
		}
		if addr := networks.GetString(fmt.Sprintf("%s.bridgeRouter", k)); len(addr) > 0 {
			bridgeRouters[domain.ChainId(chainId)] = domain.Address(addr).ToLower()
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		OperatorKeyHex: viper.GetString("chain.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chainService failed to start")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)
	swapService := swap.New(&swap.ServiceCfg{
		Routers:      swapRouters,
		ChainService: chainService,
	})
	bridgeService := bridge.New(&bridge.ServiceCfg{
		Routers:      bridgeRouters,
		ChainService: chainService,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.New(q)
	marketplaceRepo := marketplace_repository.New(q)
	activityRepo := activity_repository.New(q)
	receiptRepo := settlement_repository.NewReceiptRepo(q)

	hcUsecase := hc_usecase.New(hcRepo)
	authUsecase := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	listingUsecase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:     listingRepo,
		MarketplaceRepo: marketplaceRepo,
		ActivityRepo:    activityRepo,
		Erc721:          erc721Service,
	})
	marketplaceUsecase := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		MarketplaceRepo: marketplaceRepo,
		Erc20:           erc20Service,
	})
	settlementUsecase := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		ListingRepo:     listingRepo,
		MarketplaceRepo: marketplaceRepo,
		ActivityRepo:    activityRepo,
		ReceiptRepo:     receiptRepo,
		Erc721:          erc721Service,
		Erc20:           erc20Service,
		SwapService:     swapService,
		BridgeService:   bridgeService,
		ChainService:    chainService,
	})

	authMiddleware := auth_middleware.New(authUsecase)

	hc_delivery.New(e, hcUsecase)
	auth_delivery.New(e, authUsecase)
	activity_delivery.New(e, activityRepo)
	listing_delivery.New(e, listingUsecase, activityRepo, authMiddleware)
	marketplace_delivery.New(e, marketplaceUsecase, authMiddleware)
	settlement_delivery.New(e, settlementUsecase, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
