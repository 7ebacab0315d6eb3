package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
)

// ReservationFileRepository persists the whole store as one JSON array,
// rewritten on every mutation. Suited to single-process local deployments.
type ReservationFileRepository struct {
	mu      sync.Mutex
	path    string
	records map[string]domain.Reservation
	now     func() time.Time
}

func NewReservationFileRepository(path string) (*ReservationFileRepository, error) {
	r := &ReservationFileRepository{
		path:    path,
		records: make(map[string]domain.Reservation),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}
		return nil, httperr.ErrBackend("open data file", err)
	}

	var list []domain.Reservation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, httperr.ErrBackend("parse data file", err)
	}
	for _, res := range list {
		r.records[res.ID] = res
	}
	return r, nil
}

// flush rewrites the file from current state. Callers hold the mutex.
func (r *ReservationFileRepository) flush() error {
	list := make([]domain.Reservation, 0, len(r.records))
	for _, res := range r.records {
		list = append(list, res)
	}
	sortReservations(list)

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return httperr.ErrBackend("encode data file", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return httperr.ErrBackend("write data file", err)
	}
	return nil
}

func (r *ReservationFileRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.records))
	for _, res := range r.records {
		out = append(out, res)
	}
	sortReservations(out)
	return out, nil
}

func (r *ReservationFileRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

func (r *ReservationFileRepository) Create(ctx context.Context, fields domain.Fields) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := domain.Reservation{ID: uuid.NewString()}
	fields.Apply(&res)
	ts := r.now().UTC()
	res.CreatedAt = ts
	res.UpdatedAt = ts

	r.records[res.ID] = res
	if err := r.flush(); err != nil {
		delete(r.records, res.ID)
		return nil, err
	}
	return &res, nil
}

func (r *ReservationFileRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	fields.Apply(&res)
	res.UpdatedAt = r.now().UTC()
	r.records[id] = res
	if err := r.flush(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationFileRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	res.Status = string(status)
	res.UpdatedAt = r.now().UTC()
	r.records[id] = res
	if err := r.flush(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationFileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return r.flush()
}

// Compile-time check
var _ domain.Repository = (*ReservationFileRepository)(nil)
