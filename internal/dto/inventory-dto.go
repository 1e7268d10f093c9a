package dto

type CreateFabricDTO struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Color        *string `json:"color,omitempty"`
	Material     *string `json:"material,omitempty"`
	PricePerUnit string  `json:"price_per_unit" validate:"required,money"`
	Unit         string  `json:"unit" validate:"required,oneof=meter yard piece"`
	ReorderLevel string  `json:"reorder_level,omitempty" validate:"omitempty,money"`
}

type UpdateFabricDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Color        *string `json:"color,omitempty"`
	Material     *string `json:"material,omitempty"`
	PricePerUnit *string `json:"price_per_unit,omitempty" validate:"omitempty,money"`
	ReorderLevel *string `json:"reorder_level,omitempty" validate:"omitempty,money"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type FabricDTO struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Color          *string `json:"color,omitempty"`
	Material       *string `json:"material,omitempty"`
	PricePerUnit   string  `json:"price_per_unit"`
	Unit           string  `json:"unit"`
	QuantityOnHand string  `json:"quantity_on_hand"`
	ReorderLevel   string  `json:"reorder_level"`
	IsLowStock     bool    `json:"is_low_stock"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
}

type FabricListResponseDTO struct {
	List       []FabricDTO `json:"list"`
	TotalCount uint64      `json:"total_count"`
}

type CreateStockMovementDTO struct {
	FabricID uint64  `json:"fabric_id" validate:"required,gt=0"`
	Kind     string  `json:"kind" validate:"required,oneof=IN OUT ADJUSTMENT DAMAGE"`
	Quantity string  `json:"quantity" validate:"required,money"`
	Reason   *string `json:"reason,omitempty" validate:"omitempty,min=3"`
	OrderID  *uint64 `json:"order_id,omitempty" validate:"omitempty,gt=0"`
}

type StockMovementDTO struct {
	ID         uint64  `json:"id"`
	FabricID   uint64  `json:"fabric_id"`
	Kind       string  `json:"kind"`
	Quantity   string  `json:"quantity"`
	Reason     *string `json:"reason,omitempty"`
	OrderID    *uint64 `json:"order_id,omitempty"`
	RecordedAt string  `json:"recorded_at"`
}

type CreateAllocationDTO struct {
	FabricID uint64 `json:"fabric_id" validate:"required,gt=0"`
	Quantity string `json:"quantity" validate:"required,money"`
}

type AllocationDTO struct {
	ID          uint64 `json:"id"`
	OrderID     uint64 `json:"order_id"`
	FabricID    uint64 `json:"fabric_id"`
	FabricName  string `json:"fabric_name"`
	Quantity    string `json:"quantity"`
	AllocatedAt string `json:"allocated_at"`
}
