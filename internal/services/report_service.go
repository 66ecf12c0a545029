package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/shopspring/decimal"
)

// ReportService aggregates the payment ledger into balances and period reports
type ReportService struct {
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	paymentRepo     repository.PaymentRepository
	reportRepo      repository.ReportRepository
	timeout         time.Duration
}

func NewReportService(
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
	reportRepo repository.ReportRepository,
	timeout time.Duration,
) *ReportService {
	return &ReportService{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		reportRepo:      reportRepo,
		timeout:         timeout,
	}
}

// PatientStatement is a patient's outstanding balance broken down per appointment
type PatientStatement struct {
	Patient     models.Patient              `json:"patient"`
	Lines       []models.AppointmentBalance `json:"lines"`
	TotalDue    decimal.Decimal             `json:"total_due"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// PatientBalance sums, over all of the patient's appointments, the treatment base cost minus
// what has been paid against it. Overpaid appointments count as zero, never as credit.
func (s *ReportService) PatientBalance(ctx context.Context, patientID uint) (decimal.Decimal, error) {
	statement, err := s.PatientStatement(ctx, patientID)
	if err != nil {
		return decimal.Zero, err
	}
	return statement.TotalDue, nil
}

// PatientStatement returns the per-appointment lines behind PatientBalance
func (s *ReportService) PatientStatement(ctx context.Context, patientID uint) (*PatientStatement, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	patient, err := s.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("patient %d", patientID))
	}

	appointments, err := s.appointmentRepo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, translateError(err, "appointments")
	}

	ids := make([]uint, 0, len(appointments))
	for _, a := range appointments {
		ids = append(ids, a.ID)
	}
	paid, err := s.paymentRepo.SumPaidByAppointments(ctx, ids)
	if err != nil {
		return nil, translateError(err, "payments")
	}

	statement := &PatientStatement{
		Patient:     *patient,
		Lines:       make([]models.AppointmentBalance, 0, len(appointments)),
		TotalDue:    decimal.Zero,
		GeneratedAt: time.Now(),
	}
	for _, a := range appointments {
		paidForAppointment := paid[a.ID] // zero value when nothing was paid
		due := decimal.Max(a.Treatment.BaseCost.Sub(paidForAppointment), decimal.Zero)

		statement.Lines = append(statement.Lines, models.AppointmentBalance{
			AppointmentID: a.ID,
			Date:          a.Date,
			TreatmentName: a.Treatment.Name,
			BaseCost:      a.Treatment.BaseCost,
			Paid:          paidForAppointment,
			Due:           due,
		})
		statement.TotalDue = statement.TotalDue.Add(due)
	}
	return statement, nil
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return validationError("start date %s is after end date %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

// PeriodSummary totals revenue (amounts actually paid) and expenses within [start, end]
func (s *ReportService) PeriodSummary(ctx context.Context, start, end time.Time) (*models.PeriodSummary, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	revenue, err := s.reportRepo.SumPaidBetween(ctx, start, end)
	if err != nil {
		return nil, translateError(err, "revenue")
	}
	expenses, err := s.reportRepo.SumExpensesBetween(ctx, start, end)
	if err != nil {
		return nil, translateError(err, "expenses")
	}

	return &models.PeriodSummary{
		StartDate:     start,
		EndDate:       end,
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     revenue.Sub(expenses),
	}, nil
}

// GenerateReport returns one row per payment dated within [start, end], oldest first
func (s *ReportService) GenerateReport(ctx context.Context, start, end time.Time) ([]models.ReportRow, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	payments, err := s.paymentRepo.List(ctx, repository.PaymentFilter{From: &start, To: &end})
	if err != nil {
		return nil, translateError(err, "payments")
	}

	rows := make([]models.ReportRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, models.ReportRow{
			AppointmentID: p.AppointmentID,
			TotalAmount:   p.TotalAmount,
			ClinicShare:   p.ClinicShare,
			DoctorShare:   p.DoctorShare,
			DatePaid:      p.DatePaid,
		})
	}
	return rows, nil
}

// DoctorEarnings totals the frozen shares per doctor for payroll
func (s *ReportService) DoctorEarnings(ctx context.Context, start, end time.Time) ([]models.DoctorEarning, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	earnings, err := s.reportRepo.DoctorEarnings(ctx, start, end)
	if err != nil {
		return nil, translateError(err, "doctor earnings")
	}
	return earnings, nil
}

// ReportColumns is the fixed column order shared by every ledger export
var ReportColumns = []string{"Appointment", "Total", "Clinic Share", "Doctor Share", "Date Paid"}

// LedgerCSV renders report rows as CSV
func (s *ReportService) LedgerCSV(rows []models.ReportRow) (*bytes.Buffer, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	if err := w.Write(ReportColumns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprintf("%d", r.AppointmentID),
			r.TotalAmount.StringFixed(2),
			r.ClinicShare.StringFixed(2),
			r.DoctorShare.StringFixed(2),
			r.DatePaid.Format("2006-01-02 15:04"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return b, w.Error()
}
