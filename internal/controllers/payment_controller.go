package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type PaymentController struct {
	paymentService *services.PaymentService
	logger         *zap.Logger
}

func NewPaymentController(paymentService *services.PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{paymentService: paymentService, logger: logger}
}

func (c *PaymentController) RecordPayment(ctx echo.Context) error {
	var payload dto.CreatePaymentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	payment, err := c.paymentService.RecordPayment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, payment, "payment recorded", http.StatusCreated)
}

func (c *PaymentController) GetPaymentsByOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.paymentService.GetPaymentsByOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "payments loaded", http.StatusOK, res.TotalCount)
}

func (c *PaymentController) GetPaymentModes(ctx echo.Context) error {
	modes, err := c.paymentService.GetPaymentModes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, modes, "payment modes loaded", http.StatusOK, uint64(len(modes)))
}
