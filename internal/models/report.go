package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one ledger line of a period report. Field order is the export column order.
type ReportRow struct {
	AppointmentID uint            `json:"appointment_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ClinicShare   decimal.Decimal `json:"clinic_share"`
	DoctorShare   decimal.Decimal `json:"doctor_share"`
	DatePaid      time.Time       `json:"date_paid"`
}

// PeriodSummary aggregates revenue and expenses over an inclusive date range
type PeriodSummary struct {
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// DoctorEarning totals the frozen shares of one doctor's payments
type DoctorEarning struct {
	DoctorID    uint            `json:"doctor_id"`
	DoctorName  string          `json:"doctor_name"`
	Payments    int64           `json:"payments"`
	ClinicShare decimal.Decimal `json:"clinic_share"`
	DoctorShare decimal.Decimal `json:"doctor_share"`
}

// AppointmentBalance is the per-appointment line of a patient statement
type AppointmentBalance struct {
	AppointmentID uint            `json:"appointment_id"`
	Date          time.Time       `json:"date"`
	TreatmentName string          `json:"treatment_name"`
	BaseCost      decimal.Decimal `json:"base_cost"`
	Paid          decimal.Decimal `json:"paid"`
	Due           decimal.Decimal `json:"due"`
}
