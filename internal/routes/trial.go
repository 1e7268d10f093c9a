package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/middleware"
)

func runTrialRouter(g *echo.Group, ctrl *controllers.TrialController, authMW *middleware.AuthMiddleware) {
	g.POST("/trials", ctrl.ScheduleTrial, authMW.RequirePermission(constants.PermTrialsManage))
	g.PUT("/trials/:id", ctrl.UpdateTrial, authMW.RequirePermission(constants.PermTrialsManage))
	g.GET("/orders/:id/trials", ctrl.GetTrialsByOrder, authMW.RequirePermission(constants.PermTrialsRead))

	g.POST("/alterations", ctrl.RequestAlteration, authMW.RequirePermission(constants.PermTrialsManage))
	g.GET("/orders/:id/alterations", ctrl.GetAlterationsByOrder, authMW.RequirePermission(constants.PermTrialsRead))
	g.POST("/alterations/:id/approve", ctrl.ApproveAlteration, authMW.RequirePermission(constants.PermTrialsManage))
	g.POST("/alterations/:id/status", ctrl.SetAlterationStatus, authMW.RequirePermission(constants.PermTrialsManage))
}
