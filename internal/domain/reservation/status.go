package reservation

// ===============================
// Reservation Status / Source
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

type Source string

const (
	SourceAICall Source = "AI Call"
	SourceManual Source = "Manual"
)

// Transitions are deliberately unguarded: any valid status may replace any
// other. Only enum membership is enforced.

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func IsValidSource(s string) bool {
	switch Source(s) {
	case SourceAICall, SourceManual:
		return true
	}
	return false
}

// InitialWebhookStatus is forced onto every webhook-created reservation.
func InitialWebhookStatus() Status {
	return StatusPending
}
