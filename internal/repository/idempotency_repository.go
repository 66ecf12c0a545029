package repository

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
)

// IdempotencyRepository stores Idempotency-Key reservations and their responses
type IdempotencyRepository interface {
	FindByKey(ctx context.Context, key string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, record *models.IdempotencyKey) error
	Complete(ctx context.Context, key string, status int, body []byte) error
	Release(ctx context.Context, key string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) FindByKey(ctx context.Context, key string) (*models.IdempotencyKey, error) {
	var record models.IdempotencyKey
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Reserve inserts an in-flight record; a concurrent reservation of the same key fails
// with a duplicate key error.
func (r *idempotencyRepository) Reserve(ctx context.Context, record *models.IdempotencyKey) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *idempotencyRepository) Complete(ctx context.Context, key string, status int, body []byte) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&models.IdempotencyKey{}).
		Where("key = ?", key).
		Updates(map[string]interface{}{
			"response_status": status,
			"response_body":   body,
			"completed_at":    &now,
		}).Error
}

// Release drops a reservation so the client may retry after a server failure
func (r *idempotencyRepository) Release(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.IdempotencyKey{}).Error
}

func (r *idempotencyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.IdempotencyKey{})
	return res.RowsAffected, res.Error
}
