package dto

type StatusDTO struct {
	ID          uint64 `json:"id"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Sequence    int    `json:"sequence"`
	IsTerminal  bool   `json:"is_terminal"`
	CreatedAt   string `json:"created_at"`
}

type ShortStatusDTO struct {
	ID    uint64 `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

type TransitionDTO struct {
	ID           uint64         `json:"id"`
	FromStatus   ShortStatusDTO `json:"from_status"`
	ToStatus     ShortStatusDTO `json:"to_status"`
	AllowedRoles []string       `json:"allowed_roles"`
	Precondition *string        `json:"precondition,omitempty"`
	Description  *string        `json:"description,omitempty"`
}

type CreateStatusDTO struct {
	Code        string `json:"code" validate:"required,min=2,max=64,lowercase"`
	Label       string `json:"label" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Sequence    int    `json:"sequence" validate:"required,gt=0"`
	IsTerminal  bool   `json:"is_terminal"`
}

type CreateTransitionDTO struct {
	FromStatusID uint64   `json:"from_status_id" validate:"required,gt=0"`
	ToStatusID   uint64   `json:"to_status_id" validate:"required,gt=0,nefield=FromStatusID"`
	AllowedRoles []string `json:"allowed_roles" validate:"omitempty,dive,min=2"`
	Precondition *string  `json:"precondition,omitempty" validate:"omitempty,min=2"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// AvailableTransitionDTO is one target the caller may move an order to right
// now, given their roles and the order's current state.
type AvailableTransitionDTO struct {
	TransitionID uint64         `json:"transition_id"`
	ToStatus     ShortStatusDTO `json:"to_status"`
	Precondition *string        `json:"precondition,omitempty"`
}

type ChangeOrderStatusDTO struct {
	ToStatusID   uint64  `json:"to_status_id" validate:"required,gt=0"`
	ChangeReason *string `json:"change_reason,omitempty" validate:"omitempty,min=3"`
}
