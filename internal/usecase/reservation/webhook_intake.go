package reservation

import (
	"context"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// ======================================================
// USE CASE — WEBHOOK INTAKE
// ======================================================

type WebhookIntake struct {
	repo domain.Repository
}

func NewWebhookIntake(repo domain.Repository) *WebhookIntake {
	return &WebhookIntake{repo: repo}
}

// Execute normalizes the AI service's lenient payload and stores it. The
// record is always created as an AI Call in Pending status, so no
// confirmation call is triggered here.
func (uc *WebhookIntake) Execute(
	ctx context.Context,
	payload domain.WebhookPayload,
) (*domain.Reservation, error) {

	fields, err := domain.NormalizeWebhook(payload)
	if err != nil {
		return nil, err
	}

	return uc.repo.Create(ctx, fields)
}
