package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zulkitech/traindesk/core/payment"
)

type paymentAPI struct {
	svc *payment.Service
}

// Payments are recorded by the billing pipeline, not through this API; only
// reads are exposed.
func registerPaymentAPI(g *echo.Group, svc *payment.Service) {
	api := paymentAPI{svc: svc}

	pg := g.Group("/payments")
	pg.GET("", api.query)
}

func (api *paymentAPI) query(ctx echo.Context) error {
	payments, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	if payments == nil {
		payments = []payment.Payment{}
	}
	return ctx.JSON(http.StatusOK, payments)
}
