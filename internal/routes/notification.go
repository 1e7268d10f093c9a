package routes

import (
	"github.com/labstack/echo/v4"

	"tailorshop/internal/controllers"
)

// Notifications are always scoped to the authenticated user, so no extra
// permission gate beyond Auth.
func runNotificationRouter(g *echo.Group, ctrl *controllers.NotificationController) {
	g.GET("/notifications", ctrl.GetMyNotifications)
	g.POST("/notifications/:id/read", ctrl.MarkRead)
	g.POST("/notifications/read-all", ctrl.MarkAllRead)
}
