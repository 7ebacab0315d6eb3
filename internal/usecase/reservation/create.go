package reservation

import (
	"context"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/notify"
)

// ======================================================
// USE CASE — CREATE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewCreateReservation(
	repo domain.Repository,
	notifier notify.Notifier,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		notifier: notifier,
	}
}

// Execute validates and persists a manually created reservation. When the
// record lands already confirmed, a confirmation call is enqueued after the
// write commits; enqueue failure cannot reach the caller.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	fields domain.Fields,
) (*domain.Reservation, error) {

	if err := domain.Validate(fields); err != nil {
		return nil, err
	}

	res, err := uc.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	if res.Status == string(domain.StatusConfirmed) {
		uc.notifier.EnqueueConfirmation(*res)
	}

	return res, nil
}
