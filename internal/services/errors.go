package services

import (
	"errors"
	"fmt"

	"github.com/dralafandy/Cura-dental-app/internal/repository"

	"gorm.io/gorm"
)

// Common service errors. Callers match them with errors.Is; the wrapped text carries detail.
var (
	ErrNotFound      = errors.New("record not found")
	ErrValidation    = errors.New("validation failed")
	ErrStorage       = errors.New("storage unavailable")
	ErrConfiguration = errors.New("ledger configuration error")
	ErrConflict      = errors.New("conflict")
)

// IsRetryable reports whether the operation may succeed if repeated unchanged
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorage)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// translateError maps repository and driver errors onto the service sentinels.
// Errors already carrying a sentinel pass through untouched.
func translateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation), errors.Is(err, ErrStorage),
		errors.Is(err, ErrConfiguration), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	case errors.Is(err, repository.ErrStaleObject):
		return fmt.Errorf("%w: %s was modified concurrently, reload and retry", ErrConflict, entity)
	case repository.IsDuplicateKeyError(err, ""):
		return fmt.Errorf("%w: %s already exists", ErrConflict, entity)
	case repository.IsForeignKeyError(err):
		return fmt.Errorf("%w: %s is referenced by other records", ErrConflict, entity)
	case repository.IsNumericOverflowError(err):
		return fmt.Errorf("%w: %s has a value out of range: %w", ErrValidation, entity, err)
	default:
		// Driver failures, deadline expiry and cancellation
		return fmt.Errorf("%w: %s: %w", ErrStorage, entity, err)
	}
}
