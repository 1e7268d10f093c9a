package dto

type CreateGarmentTypeDTO struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	Description   *string `json:"description,omitempty"`
	BasePrice     string  `json:"base_price" validate:"required,money"`
	EstimatedDays int     `json:"estimated_days" validate:"required,gt=0"`
}

type UpdateGarmentTypeDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string `json:"description,omitempty"`
	BasePrice     *string `json:"base_price,omitempty" validate:"omitempty,money"`
	EstimatedDays *int    `json:"estimated_days,omitempty" validate:"omitempty,gt=0"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type GarmentTypeDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	BasePrice     string  `json:"base_price"`
	EstimatedDays int     `json:"estimated_days"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ShortGarmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CreateWorkTypeDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	ExtraCharge string  `json:"extra_charge" validate:"required,money"`
}

type UpdateWorkTypeDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	ExtraCharge *string `json:"extra_charge,omitempty" validate:"omitempty,money"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type WorkTypeDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ExtraCharge string  `json:"extra_charge"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
