package dto

type OrderHistoryDTO struct {
	ID           uint64         `json:"id"`
	FromStatus   ShortStatusDTO `json:"from_status"`
	ToStatus     ShortStatusDTO `json:"to_status"`
	ChangedBy    ShortUserDTO   `json:"changed_by"`
	ChangeReason *string        `json:"change_reason,omitempty"`
	ChangedAt    string         `json:"changed_at"`
}
