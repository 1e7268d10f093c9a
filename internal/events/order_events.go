package events

// Event names as used on the bus.
const (
	OrderCreatedName       = "order.created"
	OrderStatusChangedName = "order.status_changed"
	PaymentRecordedName    = "payment.recorded"
	AlterationApprovedName = "alteration.approved"
)

type OrderCreated struct {
	OrderID     uint64
	OrderNumber string
	CustomerID  uint64
	ActorID     uint64
}

func (OrderCreated) Name() string { return OrderCreatedName }

type OrderStatusChanged struct {
	OrderID        uint64
	OrderNumber    string
	FromStatusCode string
	ToStatusCode   string
	ActorID        uint64
}

func (OrderStatusChanged) Name() string { return OrderStatusChangedName }

type PaymentRecorded struct {
	OrderID     uint64
	OrderNumber string
	PaymentID   uint64
	Amount      string
	ActorID     uint64
}

func (PaymentRecorded) Name() string { return PaymentRecordedName }

type AlterationApproved struct {
	OrderID      uint64
	AlterationID uint64
	Charge       string
	ActorID      uint64
}

func (AlterationApproved) Name() string { return AlterationApprovedName }
