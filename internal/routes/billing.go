package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runBillingRouter(g *echo.Group, ctrl *controllers.BillingController, authMW *middleware.AuthMiddleware) {
	g.GET("/orders/:id/bill", ctrl.GetBill, authMW.RequirePermission(constants.PermBillingRead))
	g.POST("/orders/:id/bill/recompute", ctrl.RecomputeBill, authMW.RequirePermission(constants.PermBillingManage))
	g.GET("/orders/:id/invoice", ctrl.GetOrderInvoice, authMW.RequirePermission(constants.PermBillingRead))
	g.GET("/invoices", ctrl.GetInvoices, authMW.RequirePermission(constants.PermBillingRead))
}
