package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runOrderRouter(g *echo.Group, ctrl *controllers.OrderController, authMW *middleware.AuthMiddleware) {
	g.GET("/orders", ctrl.GetOrders, authMW.RequirePermission(constants.PermOrdersRead))
	g.GET("/orders/:id", ctrl.FindOrder, authMW.RequirePermission(constants.PermOrdersRead))
	g.POST("/orders", ctrl.CreateOrder, authMW.RequirePermission(constants.PermOrdersCreate))
	g.PUT("/orders/:id", ctrl.UpdateOrder, authMW.RequirePermission(constants.PermOrdersUpdate))
	g.DELETE("/orders/:id", ctrl.DeleteOrder, authMW.RequirePermission(constants.PermOrdersDelete))

	g.POST("/orders/:id/status", ctrl.ChangeStatus, authMW.RequirePermission(constants.PermOrdersChangeStatus))
	g.GET("/orders/:id/transitions", ctrl.AvailableTransitions, authMW.RequirePermission(constants.PermOrdersRead))
	g.GET("/orders/:id/history", ctrl.GetHistory, authMW.RequirePermission(constants.PermOrdersRead))
}
