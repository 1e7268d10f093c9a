package dto

type DashboardDTO struct {
	OrdersByStatus   []StatusCountDTO `json:"orders_by_status"`
	UrgentOrders     uint64           `json:"urgent_orders"`
	OverdueInvoices  uint64           `json:"overdue_invoices"`
	RevenueThisMonth string           `json:"revenue_this_month"`
	LowStockFabrics  uint64           `json:"low_stock_fabrics"`
}

type StatusCountDTO struct {
	StatusID uint64 `json:"status_id"`
	Code     string `json:"code"`
	Label    string `json:"label"`
	Count    uint64 `json:"count"`
}

type OrderReportFilterDTO struct {
	From     string  `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string  `query:"to" validate:"omitempty,datetime=2006-01-02"`
	StatusID *uint64 `query:"status_id"`
}
