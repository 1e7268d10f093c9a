package dto

import "github.com/aarondl/null/v8"

type CreateTrialDTO struct {
	OrderID     uint64 `json:"order_id" validate:"required,gt=0"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
}

type UpdateTrialDTO struct {
	ScheduledAt *string     `json:"scheduled_at,omitempty"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED COMPLETED RESCHEDULED CANCELLED"`
	Feedback    null.String `json:"feedback" validate:"omitempty,min=3"`
}

type TrialDTO struct {
	ID          uint64  `json:"id"`
	OrderID     uint64  `json:"order_id"`
	ScheduledAt string  `json:"scheduled_at"`
	Status      string  `json:"status"`
	Feedback    *string `json:"feedback,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type CreateAlterationDTO struct {
	OrderID           uint64  `json:"order_id" validate:"required,gt=0"`
	TrialID           *uint64 `json:"trial_id,omitempty" validate:"omitempty,gt=0"`
	Description       string  `json:"description" validate:"required,min=3"`
	Charge            string  `json:"charge" validate:"required,money"`
	IsIncludedInPrice bool    `json:"is_included_in_price"`
}

type SetAlterationStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED"`
}

type AlterationDTO struct {
	ID                uint64  `json:"id"`
	OrderID           uint64  `json:"order_id"`
	TrialID           *uint64 `json:"trial_id,omitempty"`
	Description       string  `json:"description"`
	Charge            string  `json:"charge"`
	IsIncludedInPrice bool    `json:"is_included_in_price"`
	Status            string  `json:"status"`
	CompletedAt       *string `json:"completed_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}
