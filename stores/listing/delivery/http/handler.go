package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/delivery"
	"github.com/crossmart/goapi/base/metrics"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/domain/listing"
	"github.com/crossmart/goapi/middleware"
	authMiddleware "github.com/crossmart/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing  listing.UseCase
	activity activity.Repo
}

func New(
	e *echo.Echo,
	listingUC listing.UseCase,
	activityRepo activity.Repo,
	authMiddleware *authMiddleware.AuthMiddleware,
) {
	met = metrics.New("listing")

	h := &handler{listingUC, activityRepo}

	gs := e.Group("/listings")

	gs.GET("", h.getAll, middleware.CacheHttp(15*time.Second))

	g := e.Group("/listing/:collection/:tokenId", middleware.IsValidAddress("collection"))

	g.GET("", h.get, middleware.CacheHttp(15*time.Second))

	g.POST("", h.list, authMiddleware.Auth())

	g.PUT("/price", h.editPrice, authMiddleware.Auth())

	g.DELETE("", h.delist, authMiddleware.Auth())

	g.GET("/activities", h.getActivities)
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId    *domain.ChainId `query:"chainId"`
		Collection *domain.Address `query:"collection"`
		Lister     *domain.Address `query:"lister"`
		Status     *listing.Status `query:"status"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit" validate:"max=500"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, listing.WithChainId(*p.ChainId))
	}
	if p.Collection != nil {
		opts = append(opts, listing.WithCollection(*p.Collection))
	}
	if p.Lister != nil {
		opts = append(opts, listing.WithLister(*p.Lister))
	}
	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}
	if p.Limit > 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Get(ctx, listing.Id{CollectionAddress: p.Collection, TokenId: p.TokenId})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
		Price      domain.Amount  `json:"price" validate:"required"`
		Crosschain bool           `json:"crosschain"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("list", 1, "chainId", fmt.Sprint(p.ChainId))
	res, err := h.listing.List(ctx, p.ChainId, p.Collection, p.TokenId, p.Price, p.Crosschain, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) editPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
		Price      domain.Amount  `json:"price" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.EditPrice(ctx, p.ChainId, p.Collection, p.TokenId, p.Price, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) delist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.Delist(ctx, p.ChainId, p.Collection, p.TokenId, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
		Offset     int32          `query:"offset"`
		Limit      int32          `query:"limit" validate:"max=500"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []activity.FindAllOptionsFunc{
		activity.WithToken(p.Collection, p.TokenId),
	}
	if p.Limit > 0 {
		opts = append(opts, activity.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.activity.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
