package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/jobs"
	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"

	"gorm.io/datatypes"
)

const auditWriteTimeout = 10 * time.Second

// AuditService writes the change log. Entries are written on the worker pool so a slow
// audit table never delays a ledger write.
type AuditService struct {
	repo   repository.AuditRepository
	worker *jobs.Worker
}

func NewAuditService(repo repository.AuditRepository, worker *jobs.Worker) *AuditService {
	return &AuditService{repo: repo, worker: worker}
}

// Record queues an audit entry. Failures are logged, never returned. A nil service is a no-op.
func (s *AuditService) Record(ctx context.Context, action, entity string, entityID uint, details any) {
	if s == nil || s.repo == nil {
		return
	}

	entry := &models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			logger.Warn("[Audit] Could not encode details", "entity", entity, "entity_id", entityID, "error", err)
		} else {
			entry.Details = datatypes.JSON(raw)
		}
	}

	write := func(jobCtx context.Context) error {
		writeCtx, cancel := context.WithTimeout(jobCtx, auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(writeCtx, entry); err != nil {
			logger.Error("[Audit] Failed to write entry", "action", action, "entity", entity, "entity_id", entityID, "error", err)
			return err
		}
		return nil
	}

	if s.worker == nil {
		// The request context may be cancelled as soon as the handler returns
		_ = write(context.WithoutCancel(ctx))
		return
	}
	s.worker.EnqueueAsync("audit:"+entity, write)
}

// List retrieves audit logs, newest first
func (s *AuditService) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	logs, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "audit log")
	}
	return logs, total, nil
}
