package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type CatalogController struct {
	catalogService *services.CatalogService
	logger         *zap.Logger
}

func NewCatalogController(catalogService *services.CatalogService, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func (c *CatalogController) GetGarmentTypes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	limit, offset := utils.ParsePagination(ctx.Request().URL.Query())
	search := ctx.QueryParam("search")

	garments, total, err := c.catalogService.GetGarmentTypes(reqCtx, limit, offset, search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, garments, "garment types loaded", http.StatusOK, total)
}

func (c *CatalogController) FindGarmentType(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	garment, err := c.catalogService.FindGarmentType(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, garment, "garment type loaded", http.StatusOK)
}

func (c *CatalogController) CreateGarmentType(ctx echo.Context) error {
	var payload dto.CreateGarmentTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.catalogService.CreateGarmentType(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "garment type created", http.StatusCreated)
}

func (c *CatalogController) UpdateGarmentType(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateGarmentTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.catalogService.UpdateGarmentType(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "garment type updated", http.StatusOK)
}

func (c *CatalogController) GetWorkTypes(ctx echo.Context) error {
	workTypes, err := c.catalogService.GetWorkTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, workTypes, "work types loaded", http.StatusOK, uint64(len(workTypes)))
}

func (c *CatalogController) CreateWorkType(ctx echo.Context) error {
	var payload dto.CreateWorkTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.catalogService.CreateWorkType(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "work type created", http.StatusCreated)
}

func (c *CatalogController) UpdateWorkType(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateWorkTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.catalogService.UpdateWorkType(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "work type updated", http.StatusOK)
}
