package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/delivery"
	"github.com/crossmart/goapi/domain"
)

type authHandler struct {
	auth domain.AuthUseCase
}

func New(e *echo.Echo, auth domain.AuthUseCase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `json:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tkn, err := h.auth.SignToken(ctx, p.Address)
	if err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
}
