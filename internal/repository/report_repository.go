package repository

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// ReportRepository defines aggregate queries over payments and expenses
type ReportRepository interface {
	SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DoctorEarnings(ctx context.Context, from, to time.Time) ([]models.DoctorEarning, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// SumPaidBetween totals paid_amount of payments with date_paid in [from, to]
func (r *reportRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(paid_amount), 0) AS total").
		Where("date_paid >= ? AND date_paid <= ?", from, to).
		Scan(&result).Error
	return result.Total, err
}

// SumExpensesBetween totals expense amounts dated in [from, to]
func (r *reportRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date <= ?", from, to).
		Scan(&result).Error
	return result.Total, err
}

// DoctorEarnings groups the frozen shares of payments in [from, to] by treating doctor
func (r *reportRepository) DoctorEarnings(ctx context.Context, from, to time.Time) ([]models.DoctorEarning, error) {
	var earnings []models.DoctorEarning
	err := r.db.WithContext(ctx).
		Table("payments").
		Select(`doctors.id AS doctor_id, doctors.name AS doctor_name, COUNT(payments.id) AS payments,
			COALESCE(SUM(payments.clinic_share), 0) AS clinic_share,
			COALESCE(SUM(payments.doctor_share), 0) AS doctor_share`).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("payments.date_paid >= ? AND payments.date_paid <= ?", from, to).
		Group("doctors.id, doctors.name").
		Order("doctors.name ASC").
		Scan(&earnings).Error
	return earnings, err
}
