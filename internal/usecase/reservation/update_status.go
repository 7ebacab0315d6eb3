package reservation

import (
	"context"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/notify"
)

// ======================================================
// USE CASE — STATUS UPDATE
// ======================================================

type UpdateReservationStatus struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	notifier notify.Notifier,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:     repo,
		notifier: notifier,
	}
}

// Execute applies a status-only change. Transitions are unguarded beyond
// enum membership. A transition into Confirmed enqueues a confirmation
// call; re-confirming an already confirmed reservation does not.
func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	id string,
	status string,
) (*domain.Reservation, error) {

	if err := domain.ValidateStatus(status); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.UpdateStatus(ctx, id, domain.Status(status))
	if err != nil {
		return nil, err
	}

	if res.Status == string(domain.StatusConfirmed) &&
		current.Status != string(domain.StatusConfirmed) {
		uc.notifier.EnqueueConfirmation(*res)
	}

	return res, nil
}
