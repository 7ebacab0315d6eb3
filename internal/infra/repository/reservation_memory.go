package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// ReservationMemoryRepository is the final fallback tier: a mutex-guarded
// map seeded with sample records. Last write wins across concurrent
// requests; there is no merge.
type ReservationMemoryRepository struct {
	mu      sync.Mutex
	records map[string]domain.Reservation
	now     func() time.Time
}

func NewReservationMemoryRepository(seed []domain.Fields) *ReservationMemoryRepository {
	r := &ReservationMemoryRepository{
		records: make(map[string]domain.Reservation),
		now:     time.Now,
	}
	for _, f := range seed {
		res := domain.Reservation{ID: uuid.NewString()}
		f.Apply(&res)
		ts := r.now().UTC()
		res.CreatedAt = ts
		res.UpdatedAt = ts
		r.records[res.ID] = res
	}
	return r
}

func (r *ReservationMemoryRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.records))
	for _, res := range r.records {
		out = append(out, res)
	}
	sortReservations(out)
	return out, nil
}

func (r *ReservationMemoryRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

func (r *ReservationMemoryRepository) Create(ctx context.Context, fields domain.Fields) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := domain.Reservation{ID: uuid.NewString()}
	fields.Apply(&res)
	ts := r.now().UTC()
	res.CreatedAt = ts
	res.UpdatedAt = ts

	r.records[res.ID] = res
	return &res, nil
}

func (r *ReservationMemoryRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	fields.Apply(&res)
	res.UpdatedAt = r.now().UTC()
	r.records[id] = res
	return &res, nil
}

func (r *ReservationMemoryRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	res.Status = string(status)
	res.UpdatedAt = r.now().UTC()
	r.records[id] = res
	return &res, nil
}

func (r *ReservationMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// Canonical date/time strings sort correctly as plain strings.
func sortReservations(list []domain.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationMemoryRepository)(nil)
