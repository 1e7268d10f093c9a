package dto

type NotificationDTO struct {
	ID         uint64  `json:"id"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	EntityType *string `json:"entity_type,omitempty"`
	EntityID   *uint64 `json:"entity_id,omitempty"`
	IsRead     bool    `json:"is_read"`
	CreatedAt  string  `json:"created_at"`
}

type NotificationListResponseDTO struct {
	List       []NotificationDTO `json:"list"`
	TotalCount uint64            `json:"total_count"`
}
