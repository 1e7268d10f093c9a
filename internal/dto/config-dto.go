package dto

type SystemConfigurationDTO struct {
	ShopName          string `json:"shop_name"`
	TaxRate           string `json:"tax_rate"`
	UrgencyMultiplier string `json:"urgency_multiplier"`
	InvoiceDueDays    int    `json:"invoice_due_days"`
	CurrencyCode      string `json:"currency_code"`
	UpdatedAt         string `json:"updated_at"`
}

type UpdateSystemConfigurationDTO struct {
	ShopName          *string `json:"shop_name,omitempty" validate:"omitempty,min=2,max=255"`
	TaxRate           *string `json:"tax_rate,omitempty" validate:"omitempty,money"`
	UrgencyMultiplier *string `json:"urgency_multiplier,omitempty" validate:"omitempty,money"`
	InvoiceDueDays    *int    `json:"invoice_due_days,omitempty" validate:"omitempty,gt=0"`
	CurrencyCode      *string `json:"currency_code,omitempty" validate:"omitempty,len=3,uppercase"`
}
