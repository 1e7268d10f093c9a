package dto

type BillDTO struct {
	ID                uint64 `json:"id"`
	OrderID           uint64 `json:"order_id"`
	BaseGarmentPrice  string `json:"base_garment_price"`
	WorkTypeCharges   string `json:"work_type_charges"`
	AlterationCharges string `json:"alteration_charges"`
	UrgencySurcharge  string `json:"urgency_surcharge"`
	Subtotal          string `json:"subtotal"`
	TaxRate           string `json:"tax_rate"`
	TaxAmount         string `json:"tax_amount"`
	TotalAmount       string `json:"total_amount"`
	AdvanceAmount     string `json:"advance_amount"`
	BalanceAmount     string `json:"balance_amount"`
	GeneratedAt       string `json:"generated_at"`
	UpdatedAt         string `json:"updated_at"`
}

type RecordAdvanceDTO struct {
	Amount string `json:"amount" validate:"required,money"`
}

type InvoiceDTO struct {
	ID            uint64  `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	OrderID       uint64  `json:"order_id"`
	BillID        uint64  `json:"bill_id"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Status        string  `json:"status"`
	IssuedAt      *string `json:"issued_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type InvoiceListResponseDTO struct {
	List       []InvoiceDTO `json:"list"`
	TotalCount uint64       `json:"total_count"`
}
