package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runPaymentRouter(g *echo.Group, ctrl *controllers.PaymentController, authMW *middleware.AuthMiddleware) {
	g.POST("/payments", ctrl.RecordPayment, authMW.RequirePermission(constants.PermPaymentsCreate))
	g.GET("/orders/:id/payments", ctrl.GetPaymentsByOrder, authMW.RequirePermission(constants.PermPaymentsRead))
	g.GET("/payment-modes", ctrl.GetPaymentModes, authMW.RequirePermission(constants.PermPaymentsRead))
}
