package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrBeanNotFound      = errors.New("coffee bean not found")
	ErrLotNotFound       = errors.New("inventory lot not found")
	ErrTastingNotFound   = errors.New("tasting note not found")
	ErrScheduleNotFound  = errors.New("schedule entry not found")
	ErrCostEntryNotFound = errors.New("cost entry not found")
	ErrBrewLogNotFound   = errors.New("brewing log entry not found")
	ErrTokenNotFound     = errors.New("token not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field problem found in one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err carries field errors.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
