package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	g.GET("/users", ctrl.GetUsers, authMW.RequirePermission(constants.PermUsersRead))
	g.GET("/users/:id", ctrl.FindUser, authMW.RequirePermission(constants.PermUsersRead))
	g.POST("/users", ctrl.CreateUser, authMW.RequirePermission(constants.PermUsersManage))
	g.PUT("/users/:id", ctrl.UpdateUser, authMW.RequirePermission(constants.PermUsersManage))
	g.DELETE("/users/:id", ctrl.DeleteUser, authMW.RequirePermission(constants.PermUsersManage))

	g.GET("/roles", ctrl.GetRoles, authMW.RequirePermission(constants.PermUsersRead))
}
