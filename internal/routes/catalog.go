package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runCatalogRouter(g *echo.Group, ctrl *controllers.CatalogController, authMW *middleware.AuthMiddleware) {
	g.GET("/garment-types", ctrl.GetGarmentTypes, authMW.RequirePermission(constants.PermCatalogRead))
	g.GET("/garment-types/:id", ctrl.FindGarmentType, authMW.RequirePermission(constants.PermCatalogRead))
	g.POST("/garment-types", ctrl.CreateGarmentType, authMW.RequirePermission(constants.PermCatalogManage))
	g.PUT("/garment-types/:id", ctrl.UpdateGarmentType, authMW.RequirePermission(constants.PermCatalogManage))

	g.GET("/work-types", ctrl.GetWorkTypes, authMW.RequirePermission(constants.PermCatalogRead))
	g.POST("/work-types", ctrl.CreateWorkType, authMW.RequirePermission(constants.PermCatalogManage))
	g.PUT("/work-types/:id", ctrl.UpdateWorkType, authMW.RequirePermission(constants.PermCatalogManage))
}
