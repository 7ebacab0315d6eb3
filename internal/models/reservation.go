package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hostdesk/reservation-api/internal/domain/reservation"
)

// Reservation is the persisted row shape: snake_case columns, uuid primary
// key, nullable notes.
type Reservation struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName string    `gorm:"size:100;not null" json:"customer_name"`
	PhoneNumber  string    `gorm:"size:30;not null" json:"phone_number"`
	Date         string    `gorm:"size:10;not null;index:idx_reservations_date_time" json:"date"`
	Time         string    `gorm:"size:8;not null;index:idx_reservations_date_time" json:"time"`
	PartySize    int       `gorm:"not null" json:"party_size"`
	Source       string    `gorm:"size:20;not null" json:"source"`
	Status       string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FromDomain maps the caller-settable canonical fields onto a row. Empty
// notes persist as NULL. Mapping assumes already-validated input.
func FromDomain(f reservation.Fields) Reservation {
	row := Reservation{
		CustomerName: f.CustomerName,
		PhoneNumber:  f.PhoneNumber,
		Date:         f.Date,
		Time:         f.Time,
		PartySize:    f.PartySize,
		Source:       f.Source,
		Status:       f.Status,
	}
	if f.Notes != "" {
		notes := f.Notes
		row.Notes = &notes
	}
	return row
}

// ToDomain maps a stored row back to the canonical shape. NULL notes map to
// the empty string.
func (r Reservation) ToDomain() reservation.Reservation {
	out := reservation.Reservation{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Date:         r.Date,
		Time:         r.Time,
		PartySize:    r.PartySize,
		Source:       r.Source,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Notes != nil {
		out.Notes = *r.Notes
	}
	return out
}
