package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientBalance(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	seed := seedLedger(f, "500")

	f.db.addPayment(seed.appointment.ID, "100", "100", time.Now())
	f.db.addPayment(seed.appointment.ID, "150", "150", time.Now())

	balance, err := f.reports.PatientBalance(ctx, seed.patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "250.00", balance.StringFixed(2))
}

func TestPatientBalance_OverpaymentDoesNotOffset(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	seed := seedLedger(f, "100")
	second := f.db.addAppointment(seed.patient.ID, seed.doctor.ID, f.db.addTreatment("Extraction", "80").ID, time.Now())

	f.db.addPayment(seed.appointment.ID, "300", "300", time.Now()) // overpaid by 200
	f.db.addPayment(second.ID, "30", "30", time.Now())

	statement, err := f.reports.PatientStatement(ctx, seed.patient.ID)
	require.NoError(t, err)
	require.Len(t, statement.Lines, 2)
	assert.True(t, statement.Lines[0].Due.IsZero())
	assert.Equal(t, "50.00", statement.Lines[1].Due.StringFixed(2))
	assert.Equal(t, "50.00", statement.TotalDue.StringFixed(2))
}

func TestPatientBalance_NoAppointments(t *testing.T) {
	f := newFixture(false)
	patient := f.db.addPatient("Nour")

	balance, err := f.reports.PatientBalance(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestPatientBalance_UnknownPatient(t *testing.T) {
	f := newFixture(false)
	_, err := f.reports.PatientBalance(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPeriodSummary(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "1000")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	f.db.addPayment(seed.appointment.ID, "200", "200", start) // inclusive lower bound
	f.db.addPayment(seed.appointment.ID, "400", "300", end)   // inclusive upper bound, paid counts
	f.db.addPayment(seed.appointment.ID, "1000", "1000", end.Add(time.Hour))
	f.db.addExpense("50", start.Add(48*time.Hour))
	f.db.addExpense("75", start.Add(-time.Hour))

	summary, err := f.reports.PeriodSummary(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, "500.00", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "50.00", summary.TotalExpenses.StringFixed(2))
	assert.Equal(t, "450.00", summary.NetProfit.StringFixed(2))
}

func TestPeriodSummary_InvertedRange(t *testing.T) {
	f := newFixture(false)
	now := time.Now()
	_, err := f.reports.PeriodSummary(context.Background(), now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.reports.GenerateReport(context.Background(), now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerateReport_OrderedByDatePaid(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")
	jan := func(day int) time.Time { return time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC) }

	f.db.addPayment(seed.appointment.ID, "30", "30", jan(3))
	f.db.addPayment(seed.appointment.ID, "10", "10", jan(1))
	f.db.addPayment(seed.appointment.ID, "20", "20", jan(2))

	rows, err := f.reports.GenerateReport(context.Background(), jan(1).Add(-time.Hour), jan(4))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, want := range []time.Time{jan(1), jan(2), jan(3)} {
		assert.True(t, rows[i].DatePaid.Equal(want), "row %d", i)
		assert.Equal(t, seed.appointment.ID, rows[i].AppointmentID)
	}
	assert.Equal(t, "10.00", rows[0].TotalAmount.StringFixed(2))
}

func TestLedgerCSV(t *testing.T) {
	f := newFixture(false)
	seed := seedLedger(f, "100")
	paid := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	f.db.addPayment(seed.appointment.ID, "120", "120", paid)

	rows, err := f.reports.GenerateReport(context.Background(), paid.Add(-time.Hour), paid.Add(time.Hour))
	require.NoError(t, err)

	buf, err := f.reports.LedgerCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ReportColumns, records[0])
	assert.Equal(t, []string{fmt.Sprint(seed.appointment.ID), "120.00", "60.00", "60.00", "2024-02-01 09:30"}, records[1])
}
