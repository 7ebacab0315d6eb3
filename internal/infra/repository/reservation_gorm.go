package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
	"github.com/hostdesk/reservation-api/internal/models"
)

// ReservationGormRepository is the hosted tier, backed by Postgres through
// gorm. Backend failures are wrapped so their message reaches the operator.
type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	var rows []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&rows).Error; err != nil {
		return nil, httperr.ErrBackend("list reservations", err)
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}

func (r *ReservationGormRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	row, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	res := row.ToDomain()
	return &res, nil
}

func (r *ReservationGormRepository) Create(ctx context.Context, fields domain.Fields) (*domain.Reservation, error) {
	row := models.FromDomain(fields)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, httperr.ErrBackend("create reservation", err)
	}

	res := row.ToDomain()
	return &res, nil
}

func (r *ReservationGormRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Reservation, error) {
	row, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	next := models.FromDomain(fields)
	next.ID = row.ID
	next.CreatedAt = row.CreatedAt
	next.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&next).Error; err != nil {
		return nil, httperr.ErrBackend("update reservation", err)
	}

	res := next.ToDomain()
	return &res, nil
}

func (r *ReservationGormRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Reservation, error) {
	row, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	row.Status = string(status)
	row.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, httperr.ErrBackend("update reservation status", err)
	}

	res := row.ToDomain()
	return &res, nil
}

func (r *ReservationGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return httperr.ErrBackend("delete reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationGormRepository) fetch(ctx context.Context, id string) (*models.Reservation, error) {
	var row models.Reservation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, httperr.ErrBackend("get reservation", err)
	}
	return &row, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
