package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Treatment is a billable procedure with a reference price
type Treatment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null;index" json:"name"`
	BaseCost  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"base_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Treatment
func (Treatment) TableName() string {
	return "treatments"
}

// TreatmentPercentage is the negotiated clinic/doctor split for one treatment performed by one doctor.
// The (treatment_id, doctor_id) pair is unique.
type TreatmentPercentage struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	TreatmentID      uint            `gorm:"not null;uniqueIndex:idx_treatment_percentages_pair,priority:1" json:"treatment_id"`
	DoctorID         uint            `gorm:"not null;uniqueIndex:idx_treatment_percentages_pair,priority:2;index" json:"doctor_id"`
	ClinicPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"clinic_percentage"`
	DoctorPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"doctor_percentage"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Associations
	Treatment Treatment `gorm:"foreignKey:TreatmentID" json:"treatment,omitempty"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for TreatmentPercentage
func (TreatmentPercentage) TableName() string {
	return "treatment_percentages"
}

// Constraint name used to detect duplicate registrations
const TreatmentPercentagePairIndex = "idx_treatment_percentages_pair"
