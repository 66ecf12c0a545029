package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Patient     PatientRepository
	Doctor      DoctorRepository
	Treatment   TreatmentRepository
	Percentage  PercentageRuleRepository
	Appointment AppointmentRepository
	Payment     PaymentRepository
	Expense     ExpenseRepository
	Inventory   InventoryRepository
	Report      ReportRepository
	Audit       AuditRepository
	Idempotency IdempotencyRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Patient:     NewPatientRepository(db),
		Doctor:      NewDoctorRepository(db),
		Treatment:   NewTreatmentRepository(db),
		Percentage:  NewPercentageRuleRepository(db),
		Appointment: NewAppointmentRepository(db),
		Payment:     NewPaymentRepository(db),
		Expense:     NewExpenseRepository(db),
		Inventory:   NewInventoryRepository(db),
		Report:      NewReportRepository(db),
		Audit:       NewAuditRepository(db),
		Idempotency: NewIdempotencyRepository(db),
	}
}

// TxManager runs a unit of work inside a single database transaction.
// The repositories handed to fn are bound to that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager backed by gorm transactions
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
