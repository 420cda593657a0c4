package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUseCase
}

func New(auth domain.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	ads, err := m.auth.ParseToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	}
	c.Set("address", domain.Address(ads))
	return true, nil
}
