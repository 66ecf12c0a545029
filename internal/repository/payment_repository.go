package repository

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// PaymentFilter narrows a payment listing. Date bounds are inclusive; nil fields are ignored.
type PaymentFilter struct {
	From          *time.Time
	To            *time.Time
	AppointmentID *uint
	PatientID     *uint
	DoctorID      *uint
	Method        string
}

// PaymentRepository defines the interface for the payment ledger. There is deliberately
// no Update or Delete: payments are append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]models.Payment, error)
	CountByAppointment(ctx context.Context, appointmentID uint) (int64, error)
	SumPaidByAppointments(ctx context.Context, appointmentIDs []uint) (map[uint]decimal.Decimal, error)
	FindOrphans(ctx context.Context) ([]models.Payment, error)
	EachBatch(ctx context.Context, batchSize int, fn func(batch []models.Payment) error) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Omit("Appointment").Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns matching payments ordered by date paid, oldest first
func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	var payments []models.Payment

	db := r.db.WithContext(ctx).Model(&models.Payment{}).Select("payments.*")

	if filter.PatientID != nil || filter.DoctorID != nil {
		db = db.Joins("JOIN appointments ON appointments.id = payments.appointment_id")
		if filter.PatientID != nil {
			db = db.Where("appointments.patient_id = ?", *filter.PatientID)
		}
		if filter.DoctorID != nil {
			db = db.Where("appointments.doctor_id = ?", *filter.DoctorID)
		}
	}
	if filter.AppointmentID != nil {
		db = db.Where("payments.appointment_id = ?", *filter.AppointmentID)
	}
	if filter.From != nil {
		db = db.Where("payments.date_paid >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("payments.date_paid <= ?", *filter.To)
	}
	if filter.Method != "" {
		db = db.Where("payments.payment_method = ?", filter.Method)
	}

	err := db.Order("payments.date_paid ASC, payments.id ASC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) CountByAppointment(ctx context.Context, appointmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count, err
}

// SumPaidByAppointments totals paid_amount per appointment. Appointments without
// payments are absent from the result.
func (r *paymentRepository) SumPaidByAppointments(ctx context.Context, appointmentIDs []uint) (map[uint]decimal.Decimal, error) {
	sums := make(map[uint]decimal.Decimal, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return sums, nil
	}

	var rows []struct {
		AppointmentID uint
		Paid          decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("appointment_id, COALESCE(SUM(paid_amount), 0) AS paid").
		Where("appointment_id IN ?", appointmentIDs).
		Group("appointment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[row.AppointmentID] = row.Paid
	}
	return sums, nil
}

// FindOrphans returns payments whose appointment row no longer exists
func (r *paymentRepository) FindOrphans(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Select("payments.*").
		Joins("LEFT JOIN appointments ON appointments.id = payments.appointment_id").
		Where("appointments.id IS NULL").
		Order("payments.id ASC").
		Find(&payments).Error
	return payments, err
}

// EachBatch walks the whole ledger in id order
func (r *paymentRepository) EachBatch(ctx context.Context, batchSize int, fn func(batch []models.Payment) error) error {
	var batch []models.Payment
	return r.db.WithContext(ctx).
		Order("id ASC").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}
