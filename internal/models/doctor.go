package models

import "time"

// Doctor represents a treating dentist
type Doctor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `gorm:"size:40" json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Doctor
func (Doctor) TableName() string {
	return "doctors"
}
