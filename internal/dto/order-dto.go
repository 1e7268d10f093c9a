package dto

type CreateOrderDTO struct {
	CustomerID           uint64   `json:"customer_id" validate:"required,gt=0"`
	GarmentTypeID        uint64   `json:"garment_type_id" validate:"required,gt=0"`
	WorkTypeIDs          []uint64 `json:"work_type_ids,omitempty" validate:"omitempty,dive,gt=0"`
	ExpectedDeliveryDate string   `json:"expected_delivery_date" validate:"required,datetime=2006-01-02"`
	IsUrgent             bool     `json:"is_urgent"`
	AdvanceAmount        string   `json:"advance_amount,omitempty" validate:"omitempty,money"`
	SpecialInstructions  *string  `json:"special_instructions,omitempty" validate:"omitempty,min=3"`
}

type UpdateOrderDTO struct {
	ExpectedDeliveryDate *string `json:"expected_delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SpecialInstructions  *string `json:"special_instructions,omitempty" validate:"omitempty,min=3"`
}

type OrderWorkTypeDTO struct {
	WorkTypeID  uint64 `json:"work_type_id"`
	Name        string `json:"name"`
	ExtraCharge string `json:"extra_charge"`
}

type OrderResponseDTO struct {
	ID                   uint64             `json:"id"`
	OrderNumber          string             `json:"order_number"`
	Customer             ShortCustomerDTO   `json:"customer"`
	GarmentType          ShortGarmentDTO    `json:"garment_type"`
	CurrentStatus        ShortStatusDTO     `json:"current_status"`
	WorkTypes            []OrderWorkTypeDTO `json:"work_types"`
	ExpectedDeliveryDate string             `json:"expected_delivery_date"`
	ActualDeliveryDate   *string            `json:"actual_delivery_date,omitempty"`
	IsUrgent             bool               `json:"is_urgent"`
	UrgencyMultiplier    string             `json:"urgency_multiplier"`
	SpecialInstructions  *string            `json:"special_instructions,omitempty"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

type OrderListResponseDTO struct {
	List       []OrderResponseDTO `json:"list"`
	TotalCount uint64             `json:"total_count"`
}

type OrderFilterDTO struct {
	StatusID   *uint64 `query:"status_id"`
	CustomerID *uint64 `query:"customer_id"`
	IsUrgent   *bool   `query:"is_urgent"`
	Search     string  `query:"search"`
}
