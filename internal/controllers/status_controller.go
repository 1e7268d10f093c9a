package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

// StatusController serves the status registry and the transition table.
type StatusController struct {
	registry *services.StatusRegistryService
	logger   *zap.Logger
}

func NewStatusController(registry *services.StatusRegistryService, logger *zap.Logger) *StatusController {
	return &StatusController{registry: registry, logger: logger}
}

func (c *StatusController) GetStatuses(ctx echo.Context) error {
	statuses, err := c.registry.GetStatusDTOs(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statuses, "statuses loaded", http.StatusOK, uint64(len(statuses)))
}

func (c *StatusController) CreateStatus(ctx echo.Context) error {
	var payload dto.CreateStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.registry.CreateStatus(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "status created", http.StatusCreated)
}

func (c *StatusController) GetTransitions(ctx echo.Context) error {
	transitions, err := c.registry.GetTransitionDTOs(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, transitions, "transitions loaded", http.StatusOK, uint64(len(transitions)))
}

func (c *StatusController) CreateTransition(ctx echo.Context) error {
	var payload dto.CreateTransitionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.registry.CreateTransition(ctx.Request().Context(), entities.StatusTransition{
		FromStatusID: payload.FromStatusID,
		ToStatusID:   payload.ToStatusID,
		AllowedRoles: payload.AllowedRoles,
		Precondition: payload.Precondition,
		Description:  payload.Description,
	})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "transition created", http.StatusCreated)
}

func (c *StatusController) DeleteTransition(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.registry.DeleteTransition(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "transition deleted", http.StatusOK)
}
