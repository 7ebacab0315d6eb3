package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ===============================
// Webhook normalization
// ===============================
//
// The AI calling service is not strict about date/time formats, so the
// webhook path coerces its payload into canonical form before validation.

// WebhookPayload is the loose inbound shape pushed by the calling service.
// Caller-supplied source/status, if present, are ignored.
type WebhookPayload struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PartySize   int    `json:"partySize"`
	Notes       string `json:"notes"`
}

var (
	hourOnlyPattern   = regexp.MustCompile(`^\d{1,2}$`)
	hourMinutePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

	// Layouts tried, in order, when the date is not already canonical.
	dateLayouts = []string{
		"01/02/2006",
		"2006/01/02",
		"01-02-2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"January 2 2006",
		"Jan 2 2006",
		"2 January 2006",
	}
)

// NormalizeDate returns the canonical YYYY-MM-DD form of raw, or an
// InvalidDateFormat error when no accepted layout matches.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if datePattern.MatchString(raw) {
		if _, err := time.Parse("2006-01-02", raw); err == nil {
			return raw, nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", errValidation(fmt.Sprintf("InvalidDateFormat: could not parse date %q", raw))
}

// NormalizeTime pads partial 24-hour forms up to HH:MM:SS. Accepted inputs
// are HH:MM:SS, H:MM / HH:MM, and a bare hour. Minutes and seconds must be
// two digits; no AM/PM parsing is attempted.
func NormalizeTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case timePattern.MatchString(raw):
		if _, err := time.Parse("15:04:05", raw); err == nil {
			return raw, nil
		}
	case hourMinutePattern.MatchString(raw):
		padded := raw
		if len(strings.SplitN(padded, ":", 2)[0]) == 1 {
			padded = "0" + padded
		}
		padded += ":00"
		if _, err := time.Parse("15:04:05", padded); err == nil {
			return padded, nil
		}
	case hourOnlyPattern.MatchString(raw):
		padded := raw
		if len(padded) == 1 {
			padded = "0" + padded
		}
		padded += ":00:00"
		if _, err := time.Parse("15:04:05", padded); err == nil {
			return padded, nil
		}
	}

	return "", errValidation(fmt.Sprintf("InvalidTimeFormat: could not parse time %q", raw))
}

// NormalizeWebhook validates and coerces the inbound payload into canonical
// Fields. Source and status are forced regardless of what the caller sent.
func NormalizeWebhook(p WebhookPayload) (Fields, error) {
	var problems []string

	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(p.PhoneNumber) == "" {
		problems = append(problems, "phone_number is required")
	}
	if p.PartySize < 1 {
		problems = append(problems, "partySize must be a positive integer")
	}

	date, dateErr := NormalizeDate(p.Date)
	if dateErr != nil {
		problems = append(problems, dateErr.(ValidationError).Fields...)
	}
	clock, timeErr := NormalizeTime(p.Time)
	if timeErr != nil {
		problems = append(problems, timeErr.(ValidationError).Fields...)
	}

	if len(problems) > 0 {
		return Fields{}, ValidationError{Fields: problems}
	}

	return Fields{
		CustomerName: strings.TrimSpace(p.Name),
		PhoneNumber:  strings.TrimSpace(p.PhoneNumber),
		Date:         date,
		Time:         clock,
		PartySize:    p.PartySize,
		Source:       string(SourceAICall),
		Status:       string(InitialWebhookStatus()),
		Notes:        p.Notes,
	}, nil
}
