package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"stale", repository.ErrStaleObject, ErrConflict},
		{"duplicate", &pgconn.PgError{Code: "23505", ConstraintName: "idx_treatment_percentages_pair"}, ErrConflict},
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrConflict},
		{"numeric overflow", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}, ErrValidation},
		{"deadline", context.DeadlineExceeded, ErrStorage},
		{"driver", errors.New("connection refused"), ErrStorage},
		{"already translated", fmt.Errorf("%w: bad", ErrValidation), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err, "thing"), tt.want)
		})
	}
	assert.NoError(t, translateError(nil, "thing"))
}

func TestTranslateError_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := translateError(cause, "payment")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "payment")
	assert.True(t, IsRetryable(err))
	assert.False(t, IsRetryable(translateError(gorm.ErrRecordNotFound, "payment")))
	assert.False(t, IsRetryable(translateError(&pgconn.PgError{Code: "22003"}, "payment")))
}
