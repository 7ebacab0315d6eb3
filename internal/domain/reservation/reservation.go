package reservation

import "time"

// Reservation is the canonical application shape. Date and Time are kept as
// canonical strings (YYYY-MM-DD / HH:MM:SS) rather than time.Time because
// they are naive restaurant-local values with no timezone to resolve.
type Reservation struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	PartySize    int       `json:"partySize"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Fields carries everything a caller may set on create/update: all
// reservation attributes except id and the backend-managed timestamps.
type Fields struct {
	CustomerName string
	PhoneNumber  string
	Date         string
	Time         string
	PartySize    int
	Source       string
	Status       string
	Notes        string
}

func (f Fields) Apply(r *Reservation) {
	r.CustomerName = f.CustomerName
	r.PhoneNumber = f.PhoneNumber
	r.Date = f.Date
	r.Time = f.Time
	r.PartySize = f.PartySize
	r.Source = f.Source
	r.Status = f.Status
	r.Notes = f.Notes
}
