package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single billing event against an appointment. Rows are never updated:
// ClinicShare and DoctorShare are frozen when the payment is recorded.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	AppointmentID uint            `gorm:"not null;index" json:"appointment_id"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"paid_amount"`
	Discounts     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"discounts"`
	Taxes         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"taxes"`
	ClinicShare   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"clinic_share"`
	DoctorShare   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"doctor_share"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	DatePaid      time.Time       `gorm:"not null;index" json:"date_paid"`
	CreatedAt     time.Time       `json:"created_at"`

	// Associations
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Payment method constants
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// IsValidPaymentMethod reports whether m is an accepted payment method
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// NetAmount returns total - discounts + taxes, the base the shares were computed on
func (p *Payment) NetAmount() decimal.Decimal {
	return p.TotalAmount.Sub(p.Discounts).Add(p.Taxes)
}

// SharesBalanced reports whether the frozen shares still add up to the net amount
func (p *Payment) SharesBalanced() bool {
	return p.ClinicShare.Add(p.DoctorShare).Equal(p.NetAmount())
}
