package httperr

import (
	"errors"
	"fmt"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBackend wraps a concrete storage failure so handlers can surface the
// backend's own message to operators instead of a generic 500.
func ErrBackend(op string, cause error) error {
	return BusinessError{
		Code:    "backend_error",
		Message: fmt.Sprintf("%s failed: %v", op, cause),
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
