package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrNotTokenOwner) ||
			errors.Is(err, domain.ErrNotListingOwner) ||
			errors.Is(err, domain.ErrNotMarketOwner) ||
			errors.Is(err, domain.ErrNotFromRouter) ||
			errors.Is(err, domain.ErrNotFromContract):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrInsufficientFunds) ||
			errors.Is(err, domain.ErrExcessFunds) ||
			errors.Is(err, domain.ErrNotApprovedNFT) ||
			errors.Is(err, domain.ErrNonexistentListing) ||
			errors.Is(err, domain.ErrNotActiveLocalListing) ||
			errors.Is(err, domain.ErrNotActiveGlobalListing) ||
			errors.Is(err, domain.ErrUnknownRemoteMarket):
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
