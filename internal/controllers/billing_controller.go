package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type BillingController struct {
	billingService *services.BillingService
	logger         *zap.Logger
}

func NewBillingController(billingService *services.BillingService, logger *zap.Logger) *BillingController {
	return &BillingController{billingService: billingService, logger: logger}
}

func (c *BillingController) GetBill(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	bill, err := c.billingService.GetBill(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bill, "bill loaded", http.StatusOK)
}

// RecomputeBill re-derives the bill from current charges. Used after catalog
// price corrections; normal flows recompute automatically.
func (c *BillingController) RecomputeBill(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	bill, err := c.billingService.RecomputeBill(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bill, "bill recomputed", http.StatusOK)
}

func (c *BillingController) GetOrderInvoice(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.billingService.GetInvoiceByOrderID(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, invoice, "invoice loaded", http.StatusOK)
}

func (c *BillingController) GetInvoices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())
	status := ctx.QueryParam("status")

	res, err := c.billingService.GetInvoices(reqCtx, limit, offset, status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "invoices loaded", http.StatusOK, res.TotalCount)
}
