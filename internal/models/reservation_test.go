package models

import (
	"testing"

	"github.com/hostdesk/reservation-api/internal/domain/reservation"
)

func TestMappingRoundTrip(t *testing.T) {
	fields := reservation.Fields{
		CustomerName: "Maria Santos",
		PhoneNumber:  "+1 (555) 010-2233",
		Date:         "2025-03-14",
		Time:         "19:00:00",
		PartySize:    4,
		Source:       "Manual",
		Status:       "Confirmed",
		Notes:        "Window table if possible",
	}

	row := FromDomain(fields)
	back := row.ToDomain()

	if back.CustomerName != fields.CustomerName {
		t.Errorf("customerName = %q, want %q", back.CustomerName, fields.CustomerName)
	}
	if back.PhoneNumber != fields.PhoneNumber {
		t.Errorf("phoneNumber = %q, want %q", back.PhoneNumber, fields.PhoneNumber)
	}
	if back.Date != fields.Date {
		t.Errorf("date = %q, want %q", back.Date, fields.Date)
	}
	if back.Time != fields.Time {
		t.Errorf("time = %q, want %q", back.Time, fields.Time)
	}
	if back.PartySize != fields.PartySize {
		t.Errorf("partySize = %d, want %d", back.PartySize, fields.PartySize)
	}
	if back.Source != fields.Source {
		t.Errorf("source = %q, want %q", back.Source, fields.Source)
	}
	if back.Status != fields.Status {
		t.Errorf("status = %q, want %q", back.Status, fields.Status)
	}
	if back.Notes != fields.Notes {
		t.Errorf("notes = %q, want %q", back.Notes, fields.Notes)
	}
}

func TestMappingNotes(t *testing.T) {
	// Empty canonical notes persist as NULL.
	row := FromDomain(reservation.Fields{CustomerName: "x", Notes: ""})
	if row.Notes != nil {
		t.Errorf("expected nil notes column, got %q", *row.Notes)
	}

	// NULL storage notes map back to the empty string.
	if got := row.ToDomain().Notes; got != "" {
		t.Errorf("expected empty canonical notes, got %q", got)
	}
}
