package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runCustomerRouter(g *echo.Group, ctrl *controllers.CustomerController, authMW *middleware.AuthMiddleware) {
	g.GET("/customers", ctrl.GetCustomers, authMW.RequirePermission(constants.PermCustomersRead))
	g.GET("/customers/:id", ctrl.FindCustomer, authMW.RequirePermission(constants.PermCustomersRead))
	g.POST("/customers", ctrl.CreateCustomer, authMW.RequirePermission(constants.PermCustomersManage))
	g.PUT("/customers/:id", ctrl.UpdateCustomer, authMW.RequirePermission(constants.PermCustomersManage))
	g.DELETE("/customers/:id", ctrl.DeleteCustomer, authMW.RequirePermission(constants.PermCustomersManage))

	g.POST("/customers/:id/measurements", ctrl.AddMeasurement, authMW.RequirePermission(constants.PermCustomersManage))
	g.GET("/customers/:id/measurements", ctrl.GetMeasurements, authMW.RequirePermission(constants.PermCustomersRead))
}
