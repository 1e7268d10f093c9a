package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type CustomerController struct {
	customerService *services.CustomerService
	logger          *zap.Logger
}

func NewCustomerController(customerService *services.CustomerService, logger *zap.Logger) *CustomerController {
	return &CustomerController{customerService: customerService, logger: logger}
}

func (c *CustomerController) GetCustomers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())
	search := ctx.QueryParam("search")

	res, err := c.customerService.GetCustomers(reqCtx, limit, offset, search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "customers loaded", http.StatusOK, res.TotalCount)
}

func (c *CustomerController) FindCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	customer, err := c.customerService.FindCustomer(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, customer, "customer loaded", http.StatusOK)
}

func (c *CustomerController) CreateCustomer(ctx echo.Context) error {
	var payload dto.CreateCustomerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.customerService.CreateCustomer(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "customer created", http.StatusCreated)
}

func (c *CustomerController) UpdateCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCustomerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.customerService.UpdateCustomer(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "customer updated", http.StatusOK)
}

func (c *CustomerController) DeleteCustomer(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.customerService.DeleteCustomer(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "customer deleted", http.StatusOK)
}

func (c *CustomerController) AddMeasurement(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateMeasurementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.customerService.AddMeasurement(ctx.Request().Context(), customerID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "measurement recorded", http.StatusCreated)
}

func (c *CustomerController) GetMeasurements(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	measurements, err := c.customerService.GetMeasurements(ctx.Request().Context(), customerID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, measurements, "measurements loaded", http.StatusOK, uint64(len(measurements)))
}
