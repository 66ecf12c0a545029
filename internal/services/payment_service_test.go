package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerSeed struct {
	patient     *models.Patient
	doctor      *models.Doctor
	treatment   *models.Treatment
	appointment *models.Appointment
}

func seedLedger(f *fixture, baseCost string) ledgerSeed {
	s := ledgerSeed{
		patient:   f.db.addPatient("Layla"),
		doctor:    f.db.addDoctor("Dr. Karim"),
		treatment: f.db.addTreatment("Root canal", baseCost),
	}
	s.appointment = f.db.addAppointment(s.patient.ID, s.doctor.ID, s.treatment.ID, time.Now())
	return s
}

func TestRecordPayment_UsesRegisteredSplit(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	seed := seedLedger(f, "500")

	_, err := f.percentages.RegisterSplit(ctx, seed.treatment.ID, seed.doctor.ID, NewSplit(60, 40))
	require.NoError(t, err)

	payment, err := f.payments.RecordPayment(ctx, RecordPaymentInput{
		AppointmentID: seed.appointment.ID,
		TotalAmount:   dec("200"),
		PaidAmount:    dec("150"),
		PaymentMethod: models.PaymentMethodCard,
		Discounts:     dec("20"),
		Taxes:         dec("10"),
	})
	require.NoError(t, err)

	assert.NotZero(t, payment.ID)
	assert.True(t, payment.ClinicShare.Equal(dec("114")))
	assert.True(t, payment.DoctorShare.Equal(dec("76")))
	assert.True(t, payment.SharesBalanced())
	assert.False(t, payment.DatePaid.IsZero())
	assert.Contains(t, f.db.auditActions(), models.AuditActionRecordPayment)
}

func TestRecordPayment_DefaultSplitWithoutRule(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")

	payment, err := f.payments.RecordPayment(context.Background(), RecordPaymentInput{
		AppointmentID: seed.appointment.ID,
		TotalAmount:   dec("99.99"),
		PaidAmount:    dec("99.99"),
		PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.True(t, payment.ClinicShare.Equal(dec("50.00")), payment.ClinicShare.String())
	assert.True(t, payment.DoctorShare.Equal(dec("49.99")), payment.DoctorShare.String())
	assert.True(t, payment.Discounts.IsZero())
	assert.True(t, payment.Taxes.IsZero())
}

func TestRecordPayment_SharesAreFrozen(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	seed := seedLedger(f, "100")

	_, err := f.percentages.RegisterSplit(ctx, seed.treatment.ID, seed.doctor.ID, NewSplit(70, 30))
	require.NoError(t, err)
	first, err := f.payments.RecordPayment(ctx, RecordPaymentInput{
		AppointmentID: seed.appointment.ID, TotalAmount: dec("100"), PaidAmount: dec("100"), PaymentMethod: "cash",
	})
	require.NoError(t, err)

	_, err = f.percentages.RegisterSplit(ctx, seed.treatment.ID, seed.doctor.ID, NewSplit(20, 80))
	require.NoError(t, err)
	second, err := f.payments.RecordPayment(ctx, RecordPaymentInput{
		AppointmentID: seed.appointment.ID, TotalAmount: dec("100"), PaidAmount: dec("100"), PaymentMethod: "cash",
	})
	require.NoError(t, err)

	stored, err := f.payments.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, stored.ClinicShare.Equal(dec("70")), "earlier payment keeps its split")
	assert.True(t, second.ClinicShare.Equal(dec("20")))
}

func TestRecordPayment_AppendsOneRowPerCall(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	seed := seedLedger(f, "400")

	_, err := f.percentages.RegisterSplit(ctx, seed.treatment.ID, seed.doctor.ID, NewSplit(65, 35))
	require.NoError(t, err)

	const n = 5
	recorded := make(map[uint]*models.Payment, n)
	for i := 0; i < n; i++ {
		appointment := f.db.addAppointment(seed.patient.ID, seed.doctor.ID, seed.treatment.ID, time.Now())
		payment, err := f.payments.RecordPayment(ctx, RecordPaymentInput{
			AppointmentID: appointment.ID,
			TotalAmount:   dec("123.45"),
			PaidAmount:    dec("100"),
			PaymentMethod: models.PaymentMethodTransfer,
			Discounts:     dec("3.21"),
			Taxes:         dec("1.07"),
		})
		require.NoError(t, err)
		recorded[payment.ID] = payment
	}

	payments, err := f.payments.ListPayments(ctx, repository.PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, payments, n)

	want, err := ComputeShares(dec("123.45"), dec("3.21"), dec("1.07"), NewSplit(65, 35))
	require.NoError(t, err)
	appointments := make(map[uint]bool, n)
	for _, p := range payments {
		require.Contains(t, recorded, p.ID)
		appointments[p.AppointmentID] = true
		assert.True(t, p.ClinicShare.Equal(want.Clinic), "payment %d clinic share", p.ID)
		assert.True(t, p.DoctorShare.Equal(want.Doctor), "payment %d doctor share", p.ID)
	}
	assert.Len(t, appointments, n, "one payment per appointment")
}

func TestRecordPayment_Validation(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")
	base := RecordPaymentInput{
		AppointmentID: seed.appointment.ID,
		TotalAmount:   dec("100"),
		PaidAmount:    dec("100"),
		PaymentMethod: models.PaymentMethodCash,
	}

	tests := []struct {
		name   string
		mutate func(in *RecordPaymentInput)
	}{
		{"missing appointment id", func(in *RecordPaymentInput) { in.AppointmentID = 0 }},
		{"unknown method", func(in *RecordPaymentInput) { in.PaymentMethod = "crypto" }},
		{"negative total", func(in *RecordPaymentInput) { in.TotalAmount = dec("-1") }},
		{"negative paid", func(in *RecordPaymentInput) { in.PaidAmount = dec("-1") }},
		{"negative discount", func(in *RecordPaymentInput) { in.Discounts = dec("-5") }},
		{"negative tax", func(in *RecordPaymentInput) { in.Taxes = dec("-5") }},
		{"discount beyond net", func(in *RecordPaymentInput) { in.Discounts = dec("150") }},
		{"total beyond column", func(in *RecordPaymentInput) { in.TotalAmount = dec("12345678901.00") }},
		{"net beyond column", func(in *RecordPaymentInput) {
			in.TotalAmount = dec("9999999999.99")
			in.Taxes = dec("1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := f.payments.RecordPayment(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Empty(t, f.db.payments)
}

func TestRecordPayment_UnknownAppointment(t *testing.T) {
	f := newFixture(false)

	_, err := f.payments.RecordPayment(context.Background(), RecordPaymentInput{
		AppointmentID: 404, TotalAmount: dec("10"), PaidAmount: dec("10"), PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.db.payments)
}

func TestRecordPayment_StorageFailure(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")
	f.db.failPaymentCreate = errors.New("disk full")

	_, err := f.payments.RecordPayment(context.Background(), RecordPaymentInput{
		AppointmentID: seed.appointment.ID, TotalAmount: dec("10"), PaidAmount: dec("10"), PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrStorage)
	assert.True(t, IsRetryable(err))
	assert.NotContains(t, f.db.auditActions(), models.AuditActionRecordPayment)
}

func TestRecordPayment_RoundsToCents(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")

	payment, err := f.payments.RecordPayment(context.Background(), RecordPaymentInput{
		AppointmentID: seed.appointment.ID, TotalAmount: dec("10.005"), PaidAmount: dec("10.015"), PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "10.00", payment.TotalAmount.StringFixed(2))
	assert.Equal(t, "10.02", payment.PaidAmount.StringFixed(2))
	assert.True(t, payment.SharesBalanced())
}

func TestListPayments_OrderAndFilters(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")
	other := f.db.addAppointment(f.db.addPatient("Sami").ID, seed.doctor.ID, seed.treatment.ID, time.Now())

	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	late := f.db.addPayment(seed.appointment.ID, "30", "30", day.Add(2*time.Hour))
	early := f.db.addPayment(seed.appointment.ID, "10", "10", day)
	tie := f.db.addPayment(other.ID, "20", "20", day)

	all, err := f.payments.ListPayments(context.Background(), repository.PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{early.ID, tie.ID, late.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})

	patientID := seed.patient.ID
	own, err := f.payments.ListPayments(context.Background(), repository.PaymentFilter{PatientID: &patientID})
	require.NoError(t, err)
	assert.Len(t, own, 2)

	from, to := day.Add(time.Hour), day.Add(3*time.Hour)
	ranged, err := f.payments.ListPayments(context.Background(), repository.PaymentFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, late.ID, ranged[0].ID)

	_, err = f.payments.ListPayments(context.Background(), repository.PaymentFilter{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.payments.ListPayments(context.Background(), repository.PaymentFilter{Method: "barter"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindByID_NotFound(t *testing.T) {
	f := newFixture(false)
	_, err := f.payments.FindByID(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReconcileLedger(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")

	good := f.db.addPayment(seed.appointment.ID, "100", "100", time.Now())
	orphan := f.db.addPayment(9999, "50", "50", time.Now())

	f.db.mu.Lock()
	drifted := f.db.payments[0]
	drifted.ID = f.db.nextID()
	drifted.ClinicShare = dec("60")
	f.db.payments = append(f.db.payments, drifted)
	f.db.mu.Unlock()

	report, err := f.payments.ReconcileLedger(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, []uint{drifted.ID}, report.Unbalanced)
	assert.Equal(t, []uint{orphan.ID}, report.Orphaned)
	assert.NotContains(t, report.Unbalanced, good.ID)
}
