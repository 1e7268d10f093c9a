package dto

type CreateCustomerDTO struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=5"`
	Notes    *string `json:"notes,omitempty"`
}

type UpdateCustomerDTO struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=5"`
	Notes    *string `json:"notes,omitempty"`
}

type CustomerDTO struct {
	ID        uint64  `json:"id"`
	FullName  string  `json:"full_name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ShortCustomerDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type CustomerListResponseDTO struct {
	List       []CustomerDTO `json:"list"`
	TotalCount uint64        `json:"total_count"`
}

type CreateMeasurementDTO struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Value string `json:"value" validate:"required"`
	Unit  string `json:"unit" validate:"required,oneof=cm inch"`
}

type MeasurementDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Unit    string `json:"unit"`
	TakenAt string `json:"taken_at"`
}
