package services

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/config"
	"github.com/dralafandy/Cura-dental-app/internal/jobs"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/internal/storage"
)

// Services holds all service instances
type Services struct {
	Patient     *PatientService
	Doctor      *DoctorService
	Treatment   *TreatmentService
	Percentage  *PercentageService
	Appointment *AppointmentService
	Payment     *PaymentService
	Report      *ReportService
	Export      *ExportService
	Statement   *StatementService
	Image       *ImageService
	Expense     *ExpenseService
	Inventory   *InventoryService
	Audit       *AuditService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, tx repository.TxManager, worker *jobs.Worker, store storage.Store, cfg *config.Config) *Services {
	timeout := cfg.StorageTimeout
	auditSvc := NewAuditService(repos.Audit, worker)
	percentageSvc := NewPercentageService(repos.Percentage, tx, auditSvc, cfg.StrictRules, timeout)
	reportSvc := NewReportService(repos.Patient, repos.Appointment, repos.Payment, repos.Report, timeout)
	imageSvc := NewImageService(store)

	return &Services{
		Patient:     NewPatientService(repos.Patient, repos.Appointment, imageSvc, auditSvc, timeout),
		Doctor:      NewDoctorService(repos.Doctor, auditSvc, timeout),
		Treatment:   NewTreatmentService(repos.Treatment, auditSvc, timeout),
		Percentage:  percentageSvc,
		Appointment: NewAppointmentService(repos.Appointment, repos.Patient, repos.Doctor, repos.Treatment, repos.Payment, auditSvc, timeout),
		Payment:     NewPaymentService(repos.Payment, tx, percentageSvc, auditSvc, timeout),
		Report:      reportSvc,
		Export:      NewExportService(cfg.ClinicName),
		Statement:   NewStatementService(reportSvc, cfg.ClinicName),
		Image:       imageSvc,
		Expense:     NewExpenseService(repos.Expense, auditSvc, timeout),
		Inventory:   NewInventoryService(repos.Inventory, auditSvc, timeout),
		Audit:       auditSvc,
	}
}

// withTimeout bounds a storage call. A zero timeout leaves the parent deadline alone.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
