package models

import "time"

// IdempotencyKey stores the first completed response for a client supplied Idempotency-Key
type IdempotencyKey struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Key            string     `gorm:"size:128;uniqueIndex" json:"key"`
	RequestHash    string     `gorm:"size:64" json:"request_hash"` // sha256 of method|path|body
	Method         string     `gorm:"size:10" json:"method"`
	Path           string     `gorm:"size:255" json:"path"`
	ResponseStatus int        `json:"response_status"` // 0 while the request is in flight
	ResponseBody   []byte     `gorm:"type:bytea" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// TableName specifies the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// Completed returns true once a response has been stored
func (k *IdempotencyKey) Completed() bool {
	return k.ResponseStatus != 0
}
