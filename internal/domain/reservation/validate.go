package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ===============================
// Strict validation (manual API)
// ===============================

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func errValidation(fields ...string) error {
	return ValidationError{Fields: fields}
}

// Validate gates manual create and full-update requests. Date and time must
// already be canonical; the lenient coercion in normalize.go is reserved
// for the webhook path.
func Validate(f Fields) error {
	var problems []string

	if strings.TrimSpace(f.CustomerName) == "" {
		problems = append(problems, "customerName is required")
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		problems = append(problems, "phoneNumber is required")
	} else if !phonePattern.MatchString(f.PhoneNumber) {
		problems = append(problems, "phoneNumber contains invalid characters")
	}

	if !datePattern.MatchString(f.Date) {
		problems = append(problems, "date must be YYYY-MM-DD")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		problems = append(problems, fmt.Sprintf("date %q is not a valid calendar date", f.Date))
	}

	if !timePattern.MatchString(f.Time) {
		problems = append(problems, "time must be HH:MM:SS")
	} else if _, err := time.Parse("15:04:05", f.Time); err != nil {
		problems = append(problems, fmt.Sprintf("time %q is out of range", f.Time))
	}

	if f.PartySize < 1 {
		problems = append(problems, "partySize must be a positive integer")
	}

	if !IsValidSource(f.Source) {
		problems = append(problems, fmt.Sprintf("source must be %q or %q", SourceAICall, SourceManual))
	}
	if !IsValidStatus(f.Status) {
		problems = append(problems, fmt.Sprintf("status must be one of %q, %q, %q",
			StatusPending, StatusConfirmed, StatusCancelled))
	}

	if len(problems) > 0 {
		return ValidationError{Fields: problems}
	}
	return nil
}

// ValidateStatus gates the status-only patch.
func ValidateStatus(s string) error {
	if !IsValidStatus(s) {
		return errValidation(fmt.Sprintf("status %q must be one of %q, %q, %q",
			s, StatusPending, StatusConfirmed, StatusCancelled))
	}
	return nil
}
