package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runConfigRouter(g *echo.Group, ctrl *controllers.ConfigController, authMW *middleware.AuthMiddleware) {
	g.GET("/config", ctrl.Get, authMW.RequirePermission(constants.PermConfigRead))
	g.PUT("/config", ctrl.Update, authMW.RequirePermission(constants.PermConfigManage))
}
