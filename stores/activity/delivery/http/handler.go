package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/delivery"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/domain/activity"
	"github.com/crossmart/goapi/middleware"
)

type handler struct {
	activity activity.Repo
}

// New registers the activity feed endpoint consumed by indexers.
func New(e *echo.Echo, activityRepo activity.Repo) {
	h := &handler{activityRepo}

	e.GET("/activities", h.getAll, middleware.CacheHttp(15*time.Second))
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId *domain.ChainId `query:"chainId"`
		Type    *activity.Type  `query:"type"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit" validate:"max=500"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []activity.FindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, activity.WithChainId(*p.ChainId))
	}
	if p.Type != nil {
		opts = append(opts, activity.WithType(*p.Type))
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
