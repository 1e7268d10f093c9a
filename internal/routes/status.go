package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runStatusRouter(g *echo.Group, ctrl *controllers.StatusController, authMW *middleware.AuthMiddleware) {
	g.GET("/statuses", ctrl.GetStatuses, authMW.RequirePermission(constants.PermRegistryRead))
	g.POST("/statuses", ctrl.CreateStatus, authMW.RequirePermission(constants.PermRegistryManage))
	g.GET("/transitions", ctrl.GetTransitions, authMW.RequirePermission(constants.PermRegistryRead))
	g.POST("/transitions", ctrl.CreateTransition, authMW.RequirePermission(constants.PermRegistryManage))
	g.DELETE("/transitions/:id", ctrl.DeleteTransition, authMW.RequirePermission(constants.PermRegistryManage))
}
