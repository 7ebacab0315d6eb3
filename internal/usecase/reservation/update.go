package reservation

import (
	"context"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// ======================================================
// USE CASE — FULL UPDATE
// ======================================================

type UpdateReservation struct {
	repo domain.Repository
}

func NewUpdateReservation(repo domain.Repository) *UpdateReservation {
	return &UpdateReservation{repo: repo}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	fields domain.Fields,
) (*domain.Reservation, error) {

	if err := domain.Validate(fields); err != nil {
		return nil, err
	}

	return uc.repo.Update(ctx, id, fields)
}
