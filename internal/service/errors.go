package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
)

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; services never touch gin.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrStoreUnavailable   = errors.New("storage unavailable")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrAmountMismatch     = errors.New("total amount is below the items subtotal")
)

// ValidationError carries field-level messages and matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// classifyStorageError separates connectivity failures, which callers may
// retry, from other storage errors. Record-not-found is never passed in
// here; repositories return nil for that.
func classifyStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"database is locked",
		"no such host",
		"i/o timeout",
		"broken pipe",
	} {
		if strings.Contains(msg, marker) {
			return errors.Join(ErrStoreUnavailable, err)
		}
	}
	return err
}
