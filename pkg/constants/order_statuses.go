package constants

// Order status codes, matching the seeded rows in order_statuses.
const (
	StatusBooked          = "booked"
	StatusFabricAllocated = "fabric_allocated"
	StatusStitching       = "stitching"
	StatusTrialScheduled  = "trial_scheduled"
	StatusAlteration      = "alteration"
	StatusReady           = "ready"
	StatusDelivered       = "delivered"
	StatusClosed          = "closed"
)

var TerminalStatuses = []string{
	StatusDelivered,
	StatusClosed,
}

func IsTerminalStatus(code string) bool {
	for _, s := range TerminalStatuses {
		if s == code {
			return true
		}
	}
	return false
}
