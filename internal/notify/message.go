package notify

import (
	"fmt"
	"time"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// Natural-language call scripts read the canonical date/time back to the
// customer as weekday + month + day and 12-hour time.

func FriendlyDate(canonical string) string {
	t, err := time.Parse("2006-01-02", canonical)
	if err != nil {
		return canonical
	}
	return t.Format("Monday, January 2")
}

func FriendlyTime(canonical string) string {
	t, err := time.Parse("15:04:05", canonical)
	if err != nil {
		return canonical
	}
	return t.Format("3:04 PM")
}

func PartyPhrase(size int) string {
	if size == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", size)
}

// ConfirmationScript is spoken when a reservation lands confirmed.
func ConfirmationScript(res domain.Reservation) string {
	return fmt.Sprintf(
		"Hello %s! This is a courtesy call to confirm your reservation on %s at %s for %s. We look forward to seeing you!",
		res.CustomerName,
		FriendlyDate(res.Date),
		FriendlyTime(res.Time),
		PartyPhrase(res.PartySize),
	)
}

// ReminderScript is spoken for the staff-triggered reminder endpoint.
func ReminderScript(res domain.Reservation) string {
	return fmt.Sprintf(
		"Hello %s! This is a friendly reminder about your reservation on %s at %s for %s. Please call us back if your plans have changed.",
		res.CustomerName,
		FriendlyDate(res.Date),
		FriendlyTime(res.Time),
		PartyPhrase(res.PartySize),
	)
}

// BuildCallRequest assembles the outbound payload for a reservation.
func BuildCallRequest(res domain.Reservation, callbackNumber, message string) CallRequest {
	return CallRequest{
		PhoneNumber:    res.PhoneNumber,
		CallbackNumber: callbackNumber,
		Message:        message,
		ReservationID:  res.ID,
		Metadata: CallMetadata{
			ReservationDate: res.Date,
			ReservationTime: res.Time,
			PartySize:       res.PartySize,
			CustomerName:    res.CustomerName,
		},
	}
}
