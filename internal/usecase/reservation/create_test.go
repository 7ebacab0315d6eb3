package reservation

import (
	"context"
	"testing"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	infraRepo "github.com/hostdesk/reservation-api/internal/infra/repository"
)

type stubNotifier struct {
	calls int
}

func (s *stubNotifier) EnqueueConfirmation(domain.Reservation) {
	s.calls++
}

func manualFields(status domain.Status) domain.Fields {
	return domain.Fields{
		CustomerName: "Helena Costa",
		PhoneNumber:  "555-310-8822",
		Date:         "2025-04-01",
		Time:         "18:00:00",
		PartySize:    5,
		Source:       string(domain.SourceManual),
		Status:       string(status),
	}
}

func TestCreatePendingDoesNotNotify(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	notifier := &stubNotifier{}
	uc := NewCreateReservation(repo, notifier)

	res, err := uc.Execute(context.Background(), manualFields(domain.StatusPending))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.ID == "" {
		t.Error("expected assigned id")
	}
	if notifier.calls != 0 {
		t.Errorf("notifier calls = %d, want 0", notifier.calls)
	}
}

func TestCreateConfirmedNotifiesOnce(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	notifier := &stubNotifier{}
	uc := NewCreateReservation(repo, notifier)

	if _, err := uc.Execute(context.Background(), manualFields(domain.StatusConfirmed)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", notifier.calls)
	}
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	uc := NewCreateReservation(repo, &stubNotifier{})

	bad := manualFields(domain.StatusPending)
	bad.PartySize = 0

	if _, err := uc.Execute(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}

	list, _ := repo.List(context.Background())
	if len(list) != 0 {
		t.Errorf("rejected create must not persist, store has %d records", len(list))
	}
}

func TestStatusUpdateNotifiesOnTransitionIntoConfirmed(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	notifier := &stubNotifier{}
	createUC := NewCreateReservation(repo, notifier)
	statusUC := NewUpdateReservationStatus(repo, notifier)
	ctx := context.Background()

	res, err := createUC.Execute(ctx, manualFields(domain.StatusPending))
	if err != nil {
		t.Fatal(err)
	}

	updated, err := statusUC.Execute(ctx, res.ID, string(domain.StatusConfirmed))
	if err != nil {
		t.Fatalf("status update: %v", err)
	}
	if updated.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %q", updated.Status)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", notifier.calls)
	}

	// Re-confirming is not a transition and stays silent.
	if _, err := statusUC.Execute(ctx, res.ID, string(domain.StatusConfirmed)); err != nil {
		t.Fatal(err)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls after re-confirm = %d, want 1", notifier.calls)
	}

	// Cancelling never notifies.
	if _, err := statusUC.Execute(ctx, res.ID, string(domain.StatusCancelled)); err != nil {
		t.Fatal(err)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier calls after cancel = %d, want 1", notifier.calls)
	}
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	notifier := &stubNotifier{}
	createUC := NewCreateReservation(repo, notifier)
	statusUC := NewUpdateReservationStatus(repo, notifier)
	ctx := context.Background()

	res, err := createUC.Execute(ctx, manualFields(domain.StatusPending))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := statusUC.Execute(ctx, res.ID, "Approved"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}

	unchanged, err := repo.GetByID(ctx, res.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unchanged.Status != string(domain.StatusPending) {
		t.Errorf("record changed by rejected patch: status = %q", unchanged.Status)
	}
}

func TestStatusUpdateMissingID(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	statusUC := NewUpdateReservationStatus(repo, &stubNotifier{})

	if _, err := statusUC.Execute(context.Background(), "missing", string(domain.StatusConfirmed)); err != domain.ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestWebhookIntakeForcesProvenance(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	uc := NewWebhookIntake(repo)

	res, err := uc.Execute(context.Background(), domain.WebhookPayload{
		Name:        "Carlos Mendes",
		PhoneNumber: "555-987-6543",
		Date:        "03/15/2025",
		Time:        "19:30",
		PartySize:   3,
	})
	if err != nil {
		t.Fatalf("intake: %v", err)
	}

	if res.Source != string(domain.SourceAICall) {
		t.Errorf("source = %q, want AI Call", res.Source)
	}
	if res.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want Pending", res.Status)
	}
	if res.Date != "2025-03-15" || res.Time != "19:30:00" {
		t.Errorf("normalized to (%s, %s), want (2025-03-15, 19:30:00)", res.Date, res.Time)
	}
}

func TestWebhookIntakeRejectsBadPayload(t *testing.T) {
	repo := infraRepo.NewReservationMemoryRepository(nil)
	uc := NewWebhookIntake(repo)

	if _, err := uc.Execute(context.Background(), domain.WebhookPayload{
		Name:        "Carlos Mendes",
		PhoneNumber: "555-987-6543",
		Date:        "someday",
		Time:        "19:30",
		PartySize:   3,
	}); err == nil {
		t.Fatal("expected InvalidDateFormat error")
	}

	list, _ := repo.List(context.Background())
	if len(list) != 0 {
		t.Errorf("rejected intake must not persist, store has %d records", len(list))
	}
}
