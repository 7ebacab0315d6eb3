package notify

import (
	"context"
	"log/slog"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// Notifier is the post-commit hook the usecases fire after a reservation
// lands confirmed. Implementations must never let a failure reach the
// caller.
type Notifier interface {
	EnqueueConfirmation(res domain.Reservation)
}

// Dispatcher sends confirmation calls from a worker goroutine. A full queue
// drops the event; notification is best-effort and must never block or fail
// the API request that triggered it.
type Dispatcher struct {
	client *CallFluentClient
	log    *slog.Logger
	queue  chan CallRequest
}

func NewDispatcher(client *CallFluentClient, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		client: client,
		log:    log,
		queue:  make(chan CallRequest, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for req := range d.queue {
		if err := d.client.TriggerCall(context.Background(), req); err != nil {
			d.log.Warn("confirmation call failed",
				"reservation_id", req.ReservationID,
				"error", err,
			)
		}
	}
}

func (d *Dispatcher) EnqueueConfirmation(res domain.Reservation) {
	if !d.client.Configured() {
		return
	}

	req := BuildCallRequest(res, d.client.CallbackNumber(), ConfirmationScript(res))

	select {
	case d.queue <- req:
	default:
		d.log.Warn("notification queue full, dropping event",
			"reservation_id", res.ID,
		)
	}
}
