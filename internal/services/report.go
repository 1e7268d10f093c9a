package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/repositories"
)

type ReportService struct {
	reportRepo  repositories.ReportRepositoryInterface
	invoiceRepo repositories.InvoiceRepositoryInterface
	fabricRepo  repositories.FabricRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	fabricRepo repositories.FabricRepositoryInterface,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
		fabricRepo:  fabricRepo,
		logger:      logger,
	}
}

// GetDashboard assembles the landing-page counters. Revenue covers completed
// payments from the first day of the current month.
func (s *ReportService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	ordersByStatus, err := s.reportRepo.GetOrderCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	urgent, err := s.reportRepo.CountUrgentOpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := s.invoiceRepo.CountOverdue(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.fabricRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, err := s.reportRepo.GetMonthRevenue(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		OrdersByStatus:   ordersByStatus,
		UrgentOrders:     urgent,
		OverdueInvoices:  overdue,
		RevenueThisMonth: revenue.StringFixed(2),
		LowStockFabrics:  lowStock,
	}, nil
}

func (s *ReportService) GetOrderReport(ctx context.Context, filter dto.OrderReportFilterDTO) ([]repositories.OrderReportRow, error) {
	return s.reportRepo.GetOrderReportRows(ctx, filter)
}
