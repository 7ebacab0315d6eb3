package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
)

const reservationHashKey = "reservations"

// ReservationRedisRepository keeps every reservation as a JSON value in a
// single hash keyed by id.
type ReservationRedisRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewReservationRedisRepository(client *redis.Client) *ReservationRedisRepository {
	return &ReservationRedisRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *ReservationRedisRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	raw, err := r.client.HGetAll(ctx, reservationHashKey).Result()
	if err != nil {
		return nil, httperr.ErrBackend("list reservations", err)
	}

	out := make([]domain.Reservation, 0, len(raw))
	for _, blob := range raw {
		var res domain.Reservation
		if err := json.Unmarshal([]byte(blob), &res); err != nil {
			return nil, httperr.ErrBackend("decode reservation", err)
		}
		out = append(out, res)
	}
	sortReservations(out)
	return out, nil
}

func (r *ReservationRedisRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	blob, err := r.client.HGet(ctx, reservationHashKey, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, httperr.ErrBackend("get reservation", err)
	}

	var res domain.Reservation
	if err := json.Unmarshal([]byte(blob), &res); err != nil {
		return nil, httperr.ErrBackend("decode reservation", err)
	}
	return &res, nil
}

func (r *ReservationRedisRepository) Create(ctx context.Context, fields domain.Fields) (*domain.Reservation, error) {
	res := domain.Reservation{ID: uuid.NewString()}
	fields.Apply(&res)
	ts := r.now().UTC()
	res.CreatedAt = ts
	res.UpdatedAt = ts

	if err := r.store(ctx, res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRedisRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Reservation, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := *existing
	fields.Apply(&res)
	res.UpdatedAt = r.now().UTC()

	if err := r.store(ctx, res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRedisRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Reservation, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := *existing
	res.Status = string(status)
	res.UpdatedAt = r.now().UTC()

	if err := r.store(ctx, res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRedisRepository) Delete(ctx context.Context, id string) error {
	removed, err := r.client.HDel(ctx, reservationHashKey, id).Result()
	if err != nil {
		return httperr.ErrBackend("delete reservation", err)
	}
	if removed == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationRedisRepository) store(ctx context.Context, res domain.Reservation) error {
	blob, err := json.Marshal(res)
	if err != nil {
		return httperr.ErrBackend("encode reservation", err)
	}
	if err := r.client.HSet(ctx, reservationHashKey, res.ID, blob).Err(); err != nil {
		return httperr.ErrBackend("store reservation", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReservationRedisRepository)(nil)
