package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type TrialController struct {
	trialService *services.TrialService
	logger       *zap.Logger
}

func NewTrialController(trialService *services.TrialService, logger *zap.Logger) *TrialController {
	return &TrialController{trialService: trialService, logger: logger}
}

func (c *TrialController) ScheduleTrial(ctx echo.Context) error {
	var payload dto.CreateTrialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	trial, err := c.trialService.ScheduleTrial(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, trial, "trial scheduled", http.StatusCreated)
}

func (c *TrialController) GetTrialsByOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	trials, err := c.trialService.GetTrialsByOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, trials, "trials loaded", http.StatusOK, uint64(len(trials)))
}

func (c *TrialController) UpdateTrial(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateTrialDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	trial, err := c.trialService.UpdateTrial(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, trial, "trial updated", http.StatusOK)
}

func (c *TrialController) RequestAlteration(ctx echo.Context) error {
	var payload dto.CreateAlterationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	alteration, err := c.trialService.RequestAlteration(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, alteration, "alteration requested", http.StatusCreated)
}

func (c *TrialController) GetAlterationsByOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	alterations, err := c.trialService.GetAlterationsByOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, alterations, "alterations loaded", http.StatusOK, uint64(len(alterations)))
}

// ApproveAlteration accepts a proposed alteration. A chargeable alteration
// re-derives the order's bill in the same transaction.
func (c *TrialController) ApproveAlteration(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	alteration, err := c.trialService.ApproveAlteration(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, alteration, "alteration approved", http.StatusOK)
}

func (c *TrialController) SetAlterationStatus(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.SetAlterationStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	alteration, err := c.trialService.SetAlterationStatus(ctx.Request().Context(), id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, alteration, "alteration status updated", http.StatusOK)
}
