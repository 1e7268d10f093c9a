package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type ConfigController struct {
	configService *services.ConfigService
	logger        *zap.Logger
}

func NewConfigController(configService *services.ConfigService, logger *zap.Logger) *ConfigController {
	return &ConfigController{configService: configService, logger: logger}
}

func (c *ConfigController) Get(ctx echo.Context) error {
	cfg, err := c.configService.Get(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cfg, "configuration loaded", http.StatusOK)
}

func (c *ConfigController) Update(ctx echo.Context) error {
	var payload dto.UpdateSystemConfigurationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.configService.Update(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "configuration updated", http.StatusOK)
}
