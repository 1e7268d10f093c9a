package constants

// Role names, matching the seeded rows in roles.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleTailor   = "tailor"
	RoleDelivery = "delivery"
	RoleDesigner = "designer"
	RoleCustomer = "customer"
)

// Named transition preconditions referenced by order_status_transitions rows.
const (
	PreconditionPaymentCompleted = "payment_completed"
)

// Payment statuses.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

// Invoice statuses.
const (
	InvoiceDraft         = "DRAFT"
	InvoiceIssued        = "ISSUED"
	InvoicePaid          = "PAID"
	InvoicePartiallyPaid = "PARTIALLY_PAID"
	InvoiceOverdue       = "OVERDUE"
	InvoiceCancelled     = "CANCELLED"
)

// Trial statuses.
const (
	TrialScheduled   = "SCHEDULED"
	TrialCompleted   = "COMPLETED"
	TrialRescheduled = "RESCHEDULED"
	TrialCancelled   = "CANCELLED"
)

// Alteration statuses.
const (
	AlterationProposed   = "PROPOSED"
	AlterationApproved   = "APPROVED"
	AlterationInProgress = "IN_PROGRESS"
	AlterationCompleted  = "COMPLETED"
)

// Stock movement kinds.
const (
	StockIn         = "IN"
	StockOut        = "OUT"
	StockAdjustment = "ADJUSTMENT"
	StockDamage     = "DAMAGE"
)

// Audit action types.
const (
	ActionCreate       = "CREATE"
	ActionUpdate       = "UPDATE"
	ActionDelete       = "DELETE"
	ActionStatusChange = "STATUS_CHANGE"
)

// Audit entity types.
const (
	EntityOrder     = "order"
	EntityPayment   = "payment"
	EntityInventory = "inventory"
	EntityCustomer  = "customer"
	EntityInvoice   = "invoice"
)
