package dto

type CreatePaymentDTO struct {
	OrderID       uint64  `json:"order_id" validate:"required,gt=0"`
	PaymentModeID uint64  `json:"payment_mode_id" validate:"required,gt=0"`
	Amount        string  `json:"amount" validate:"required,money"`
	Reference     *string `json:"reference,omitempty"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,min=3"`
}

type PaymentDTO struct {
	ID          uint64       `json:"id"`
	OrderID     uint64       `json:"order_id"`
	InvoiceID   *uint64      `json:"invoice_id,omitempty"`
	PaymentMode string       `json:"payment_mode"`
	Amount      string       `json:"amount"`
	Status      string       `json:"status"`
	Reference   *string      `json:"reference,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	ReceivedBy  ShortUserDTO `json:"received_by"`
	PaidAt      string       `json:"paid_at"`
}

type PaymentListResponseDTO struct {
	List       []PaymentDTO `json:"list"`
	TotalCount uint64       `json:"total_count"`
}

type PaymentModeDTO struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
