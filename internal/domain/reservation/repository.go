package reservation

import (
	"context"

	"github.com/hostdesk/reservation-api/internal/httperr"
)

// ErrNotFound is returned by every adapter when an id does not exist in the
// store. Handlers translate it to 404.
var ErrNotFound = httperr.BusinessError{
	Code:    "reservation_not_found",
	Message: "Reservation not found",
}

// Repository is the persistence port. Exactly one adapter is selected at
// startup; handlers never know which.
type Repository interface {
	// List returns every reservation ordered by (date, time) ascending.
	List(ctx context.Context) ([]Reservation, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)

	// Create assigns the id and both timestamps (createdAt == updatedAt).
	Create(ctx context.Context, fields Fields) (*Reservation, error)

	// Update replaces every caller-settable field, preserving id and
	// createdAt and refreshing updatedAt.
	Update(ctx context.Context, id string, fields Fields) (*Reservation, error)

	UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error)

	Delete(ctx context.Context, id string) error
}
