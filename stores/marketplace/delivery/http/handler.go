package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/delivery"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/marketplace"
	"github.com/crossmart/goapi/middleware"
	authMiddleware "github.com/crossmart/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, marketplaceUC marketplace.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketplaceUC}

	g := e.Group("/marketplace/:chainId")

	g.GET("", h.getConfig, middleware.CacheHttp(time.Minute))

	g.POST("/collections", h.approveCollection, authMiddleware.Auth())

	g.DELETE("/collections/:collection", h.revokeCollection, authMiddleware.Auth(), middleware.IsValidAddress("collection"))

	g.PUT("/fee", h.setFee, authMiddleware.Auth())

	g.PUT("/remotes/:destChainId", h.setRemoteMarketplace, authMiddleware.Auth())

	g.POST("/router-approval", h.grantRouterApproval, authMiddleware.Auth())
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.marketplace.GetConfig(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) approveCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId    domain.ChainId `param:"chainId" validate:"required"`
		Collection domain.Address `json:"collection" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.ApproveCollection(ctx, p.ChainId, p.Collection, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) revokeCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId    domain.ChainId `param:"chainId" validate:"required"`
		Collection domain.Address `param:"collection" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.RevokeCollection(ctx, p.ChainId, p.Collection, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
		FeeBps  int64          `json:"feeBps" validate:"min=0"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetFee(ctx, p.ChainId, p.FeeBps, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setRemoteMarketplace(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId     domain.ChainId `param:"chainId" validate:"required"`
		DestChainId domain.ChainId `param:"destChainId" validate:"required"`
		Dest        string         `json:"dest" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetRemoteMarketplace(ctx, p.ChainId, p.DestChainId, p.Dest, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) grantRouterApproval(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.GrantRouterApproval(ctx, p.ChainId, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
