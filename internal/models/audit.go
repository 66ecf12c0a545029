package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records a change made through the API
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Action    string         `gorm:"size:50;not null;index" json:"action"` // CREATE, UPDATE, DELETE, RECORD_PAYMENT, REGISTER_SPLIT
	Entity    string         `gorm:"size:50;not null;index" json:"entity"`
	EntityID  uint           `json:"entity_id"`
	Details   datatypes.JSON `gorm:"type:jsonb" json:"details"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action constants
const (
	AuditActionCreate        = "CREATE"
	AuditActionUpdate        = "UPDATE"
	AuditActionDelete        = "DELETE"
	AuditActionRecordPayment = "RECORD_PAYMENT"
	AuditActionRegisterSplit = "REGISTER_SPLIT"
)
