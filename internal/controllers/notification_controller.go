package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type NotificationController struct {
	notificationService *services.NotificationService
	logger              *zap.Logger
}

func NewNotificationController(notificationService *services.NotificationService, logger *zap.Logger) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())

	res, err := c.notificationService.GetMyNotifications(reqCtx, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "notifications loaded", http.StatusOK, res.TotalCount)
}

func (c *NotificationController) MarkRead(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.notificationService.MarkRead(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "notification marked as read", http.StatusOK)
}

func (c *NotificationController) MarkAllRead(ctx echo.Context) error {
	if err := c.notificationService.MarkAllRead(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "all notifications marked as read", http.StatusOK)
}
