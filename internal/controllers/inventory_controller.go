package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type InventoryController struct {
	inventoryService *services.InventoryService
	logger           *zap.Logger
}

func NewInventoryController(inventoryService *services.InventoryService, logger *zap.Logger) *InventoryController {
	return &InventoryController{inventoryService: inventoryService, logger: logger}
}

func (c *InventoryController) GetFabrics(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())
	search := ctx.QueryParam("search")

	res, err := c.inventoryService.GetFabrics(reqCtx, limit, offset, search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "fabrics loaded", http.StatusOK, res.TotalCount)
}

func (c *InventoryController) FindFabric(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fabric, err := c.inventoryService.FindFabric(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, fabric, "fabric loaded", http.StatusOK)
}

func (c *InventoryController) CreateFabric(ctx echo.Context) error {
	var payload dto.CreateFabricDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.inventoryService.CreateFabric(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "fabric created", http.StatusCreated)
}

func (c *InventoryController) UpdateFabric(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateFabricDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.inventoryService.UpdateFabric(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "fabric updated", http.StatusOK)
}

func (c *InventoryController) RecordStockMovement(ctx echo.Context) error {
	var payload dto.CreateStockMovementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movement, err := c.inventoryService.RecordStockMovement(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movement, "stock movement recorded", http.StatusCreated)
}

func (c *InventoryController) GetStockMovements(ctx echo.Context) error {
	fabricID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())

	movements, total, err := c.inventoryService.GetStockMovements(ctx.Request().Context(), fabricID, limit, offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, movements, "stock movements loaded", http.StatusOK, total)
}

func (c *InventoryController) AllocateFabric(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateAllocationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	allocation, err := c.inventoryService.AllocateFabric(ctx.Request().Context(), orderID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, allocation, "fabric allocated", http.StatusCreated)
}

func (c *InventoryController) GetAllocationsByOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	allocations, err := c.inventoryService.GetAllocationsByOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, allocations, "allocations loaded", http.StatusOK, uint64(len(allocations)))
}
