package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
	"github.com/shopspring/decimal"
)

// RecordPaymentInput carries one billing event. Discounts and Taxes default to zero.
type RecordPaymentInput struct {
	AppointmentID uint
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod string
	Discounts     decimal.Decimal
	Taxes         decimal.Decimal
}

// PaymentService records payments and reads the ledger. There is no update or delete:
// a payment's shares are frozen at the split in force when it was recorded.
type PaymentService struct {
	repo        repository.PaymentRepository
	tx          repository.TxManager
	percentages *PercentageService
	audit       *AuditService
	timeout     time.Duration
	now         func() time.Time
}

func NewPaymentService(repo repository.PaymentRepository, tx repository.TxManager, percentages *PercentageService, audit *AuditService, timeout time.Duration) *PaymentService {
	return &PaymentService{
		repo:        repo,
		tx:          tx,
		percentages: percentages,
		audit:       audit,
		timeout:     timeout,
		now:         time.Now,
	}
}

// MaxAmount is the largest value a numeric(12,2) money column holds
var MaxAmount = decimal.RequireFromString("9999999999.99")

func (in *RecordPaymentInput) normalize() error {
	if in.AppointmentID == 0 {
		return validationError("appointment_id is required")
	}
	if !models.IsValidPaymentMethod(in.PaymentMethod) {
		return validationError("payment method %q is not one of cash, card, transfer", in.PaymentMethod)
	}

	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"total_amount", &in.TotalAmount},
		{"paid_amount", &in.PaidAmount},
		{"discounts", &in.Discounts},
		{"taxes", &in.Taxes},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return validationError("%s must not be negative", a.name)
		}
		*a.value = a.value.RoundBank(2)
		if a.value.GreaterThan(MaxAmount) {
			return validationError("%s must not exceed %s", a.name, MaxAmount.StringFixed(2))
		}
	}

	net := in.TotalAmount.Sub(in.Discounts).Add(in.Taxes)
	if net.IsNegative() {
		return validationError("discounts exceed total plus taxes (net %s)", net.StringFixed(2))
	}
	if net.GreaterThan(MaxAmount) {
		return validationError("net amount %s exceeds %s", net.StringFixed(2), MaxAmount.StringFixed(2))
	}
	return nil
}

// RecordPayment splits the payment with the pair's current rule and appends it to the ledger.
// Lookup, resolution and insert share one transaction.
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*models.Payment, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var payment *models.Payment
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		appointment, err := repos.Appointment.FindByID(ctx, input.AppointmentID)
		if err != nil {
			return translateError(err, fmt.Sprintf("appointment %d", input.AppointmentID))
		}

		split, err := s.percentages.resolve(ctx, repos.Percentage, appointment.TreatmentID, appointment.DoctorID)
		if err != nil {
			return err
		}

		shares, err := ComputeShares(input.TotalAmount, input.Discounts, input.Taxes, split)
		if err != nil {
			return err
		}

		payment = &models.Payment{
			AppointmentID: appointment.ID,
			TotalAmount:   input.TotalAmount,
			PaidAmount:    input.PaidAmount,
			Discounts:     input.Discounts,
			Taxes:         input.Taxes,
			ClinicShare:   shares.Clinic,
			DoctorShare:   shares.Doctor,
			PaymentMethod: input.PaymentMethod,
			DatePaid:      s.now(),
		}
		if err := repos.Payment.Create(ctx, payment); err != nil {
			return translateError(err, "payment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionRecordPayment, "payment", payment.ID, map[string]any{
		"appointment_id": payment.AppointmentID,
		"total_amount":   payment.TotalAmount,
		"paid_amount":    payment.PaidAmount,
		"clinic_share":   payment.ClinicShare,
		"doctor_share":   payment.DoctorShare,
		"payment_method": payment.PaymentMethod,
	})
	logger.FromContext(ctx).Info("[Payment] Recorded", "payment_id", payment.ID, "appointment_id", payment.AppointmentID,
		"total", payment.TotalAmount.StringFixed(2), "clinic_share", payment.ClinicShare.StringFixed(2),
		"doctor_share", payment.DoctorShare.StringFixed(2))

	return payment, nil
}

// ListPayments returns payments matching the filter ordered by date paid, then id
func (s *PaymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, validationError("from date is after to date")
	}
	if filter.Method != "" && !models.IsValidPaymentMethod(filter.Method) {
		return nil, validationError("unknown payment method %q", filter.Method)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	payments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "payments")
	}
	return payments, nil
}

// FindByID retrieves a single payment
func (s *PaymentService) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("payment %d", id))
	}
	return payment, nil
}

// ReconcileReport summarises a ledger consistency scan
type ReconcileReport struct {
	Scanned     int       `json:"scanned"`
	Unbalanced  []uint    `json:"unbalanced"`
	Orphaned    []uint    `json:"orphaned"`
	CompletedAt time.Time `json:"completed_at"`
}

// ReconcileLedger scans every payment for shares that no longer add up to the net amount
// and for payments whose appointment has disappeared. It only reports; rows are never rewritten.
func (s *PaymentService) ReconcileLedger(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{}

	err := s.repo.EachBatch(ctx, 500, func(batch []models.Payment) error {
		for i := range batch {
			report.Scanned++
			if !batch[i].SharesBalanced() {
				report.Unbalanced = append(report.Unbalanced, batch[i].ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err, "payments")
	}

	orphans, err := s.repo.FindOrphans(ctx)
	if err != nil {
		return nil, translateError(err, "payments")
	}
	for _, p := range orphans {
		report.Orphaned = append(report.Orphaned, p.ID)
	}
	report.CompletedAt = s.now()

	if len(report.Unbalanced) > 0 || len(report.Orphaned) > 0 {
		logger.Warn("[Reconcile] Ledger inconsistencies found", "scanned", report.Scanned,
			"unbalanced", report.Unbalanced, "orphaned", report.Orphaned)
	} else {
		logger.Info("[Reconcile] Ledger consistent", "scanned", report.Scanned)
	}
	return report, nil
}
