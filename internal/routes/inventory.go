package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runInventoryRouter(g *echo.Group, ctrl *controllers.InventoryController, authMW *middleware.AuthMiddleware) {
	g.GET("/fabrics", ctrl.GetFabrics, authMW.RequirePermission(constants.PermInventoryRead))
	g.GET("/fabrics/:id", ctrl.FindFabric, authMW.RequirePermission(constants.PermInventoryRead))
	g.POST("/fabrics", ctrl.CreateFabric, authMW.RequirePermission(constants.PermInventoryManage))
	g.PUT("/fabrics/:id", ctrl.UpdateFabric, authMW.RequirePermission(constants.PermInventoryManage))

	g.POST("/stock-movements", ctrl.RecordStockMovement, authMW.RequirePermission(constants.PermInventoryManage))
	g.GET("/fabrics/:id/movements", ctrl.GetStockMovements, authMW.RequirePermission(constants.PermInventoryRead))

	g.POST("/orders/:id/allocations", ctrl.AllocateFabric, authMW.RequirePermission(constants.PermInventoryManage))
	g.GET("/orders/:id/allocations", ctrl.GetAllocationsByOrder, authMW.RequirePermission(constants.PermInventoryRead))
}
