package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	g.GET("/reports/dashboard", ctrl.GetDashboard, authMW.RequirePermission(constants.PermReportsRead))
	g.GET("/reports/orders", ctrl.GetOrderReport, authMW.RequirePermission(constants.PermReportsRead))
}
