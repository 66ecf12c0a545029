package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
)

type InventoryService struct {
	repo    repository.InventoryRepository
	audit   *AuditService
	timeout time.Duration
}

func NewInventoryService(repo repository.InventoryRepository, audit *AuditService, timeout time.Duration) *InventoryService {
	return &InventoryService{repo: repo, audit: audit, timeout: timeout}
}

func validateInventoryItem(item *models.InventoryItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return validationError("name is required")
	}
	if item.Quantity < 0 {
		return validationError("quantity must not be negative")
	}
	if item.ReorderLevel < 0 {
		return validationError("reorder_level must not be negative")
	}
	if item.UnitCost.IsNegative() {
		return validationError("unit_cost must not be negative")
	}
	item.UnitCost = item.UnitCost.RoundBank(2)
	return nil
}

func (s *InventoryService) FindByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("inventory item %d", id))
	}
	return item, nil
}

func (s *InventoryService) List(ctx context.Context, query *repository.ListQuery) ([]models.InventoryItem, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "inventory")
	}
	return items, total, nil
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) error {
	if err := validateInventoryItem(item); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, item); err != nil {
		return translateError(err, "inventory item")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "inventory_item", item.ID, map[string]any{"name": item.Name, "quantity": item.Quantity})
	return nil
}

func (s *InventoryService) Update(ctx context.Context, id uint, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := validateInventoryItem(item); err != nil {
		return nil, err
	}
	item.ID = id

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, translateError(err, fmt.Sprintf("inventory item %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "inventory_item", id, map[string]any{"quantity": item.Quantity})
	return s.FindByID(ctx, id)
}

// AdjustStock adds delta (negative to consume) to the stock level
func (s *InventoryService) AdjustStock(ctx context.Context, id uint, delta int) (*models.InventoryItem, error) {
	if delta == 0 {
		return nil, validationError("delta must not be zero")
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	item, err := s.repo.AdjustQuantity(ctx, id, delta)
	if errors.Is(err, repository.ErrStaleObject) {
		return nil, fmt.Errorf("%w: not enough stock of item %d to remove %d", ErrConflict, id, -delta)
	}
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("inventory item %d", id))
	}

	if item.NeedsReorder() {
		logger.Warn("[Inventory] Stock at reorder level", "item_id", item.ID, "name", item.Name,
			"quantity", item.Quantity, "reorder_level", item.ReorderLevel)
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "inventory_item", id, map[string]any{"delta": delta, "quantity": item.Quantity})
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("inventory item %d", id))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "inventory_item", id, nil)
	return nil
}
