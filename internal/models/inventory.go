package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a consumable stocked by the clinic
type InventoryItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null;index" json:"name"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"unit_cost"`
	ReorderLevel int             `gorm:"not null;default:0" json:"reorder_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NeedsReorder returns true when stock is at or below the reorder level
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}
