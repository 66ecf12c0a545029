package handlers

import (
	"github.com/dralafandy/Cura-dental-app/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Patient     *PatientHandler
	Doctor      *DoctorHandler
	Treatment   *TreatmentHandler
	Percentage  *PercentageHandler
	Appointment *AppointmentHandler
	Payment     *PaymentHandler
	Report      *ReportHandler
	Expense     *ExpenseHandler
	Inventory   *InventoryHandler
	Audit       *AuditHandler
}

// NewHandlers creates all handler instances and registers the custom binding validators
func NewHandlers(svcs *services.Services, db Pinger) *Handlers {
	RegisterValidators()

	return &Handlers{
		Health:      NewHealthHandler(db),
		Patient:     NewPatientHandler(svcs.Patient, svcs.Report, svcs.Statement),
		Doctor:      NewDoctorHandler(svcs.Doctor),
		Treatment:   NewTreatmentHandler(svcs.Treatment),
		Percentage:  NewPercentageHandler(svcs.Percentage),
		Appointment: NewAppointmentHandler(svcs.Appointment),
		Payment:     NewPaymentHandler(svcs.Payment),
		Report:      NewReportHandler(svcs.Report, svcs.Export),
		Expense:     NewExpenseHandler(svcs.Expense),
		Inventory:   NewInventoryHandler(svcs.Inventory),
		Audit:       NewAuditHandler(svcs.Audit),
	}
}
