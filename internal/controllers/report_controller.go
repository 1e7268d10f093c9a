package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/repositories"
	"tailorshop/internal/services"
	"tailorshop/pkg/utils"
)

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(reportService *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetDashboard(ctx echo.Context) error {
	dashboard, err := c.reportService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dashboard, "dashboard loaded", http.StatusOK)
}

// GetOrderReport returns the flattened order report, as JSON by default or
// as an XLSX download when format=xlsx.
func (c *ReportController) GetOrderReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var filter dto.OrderReportFilterDTO
	if err := ctx.Bind(&filter); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&filter); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	format := strings.ToLower(ctx.QueryParam("format"))

	rows, err := c.reportService.GetOrderReport(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "order report generated", http.StatusOK, uint64(len(rows)))
}

var orderReportHeaders = []string{
	"Order #", "Customer", "Garment", "Status", "Urgent",
	"Total", "Advance", "Balance", "Expected Delivery", "Created",
}

func orderReportRowToSlice(row repositories.OrderReportRow) []interface{} {
	urgent := "no"
	if row.IsUrgent {
		urgent = "yes"
	}
	return []interface{}{
		row.OrderNumber, row.CustomerName, row.GarmentType, row.StatusLabel, urgent,
		row.TotalAmount.StringFixed(2), row.AdvanceAmount.StringFixed(2), row.BalanceAmount.StringFixed(2),
		row.ExpectedDate.Format("2006-01-02"), row.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []repositories.OrderReportRow) error {
	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &orderReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := orderReportRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "A", "B", 22)
	f.SetColWidth(sheet, "C", "D", 18)
	f.SetColWidth(sheet, "F", "J", 16)

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
