package services

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Split is a clinic/doctor revenue split in percent. A valid split has both parts in
// [0, 100] with at most two decimal places, summing to exactly 100.
type Split struct {
	ClinicPercent decimal.Decimal `json:"clinic_percentage"`
	DoctorPercent decimal.Decimal `json:"doctor_percentage"`
}

// DefaultSplit applies to any treatment/doctor pair without a registered rule
var DefaultSplit = Split{
	ClinicPercent: decimal.NewFromInt(50),
	DoctorPercent: decimal.NewFromInt(50),
}

// NewSplit builds a split from percentages given as floats (rounded to two decimal places)
func NewSplit(clinic, doctor float64) Split {
	return Split{
		ClinicPercent: decimal.NewFromFloat(clinic).Round(percentScale),
		DoctorPercent: decimal.NewFromFloat(doctor).Round(percentScale),
	}
}

// percentScale matches the numeric(5,2) percentage columns
const percentScale = 2

// Validate checks the range, precision and sum of the split
func (s Split) Validate() error {
	if s.ClinicPercent.IsNegative() || s.ClinicPercent.GreaterThan(hundred) {
		return validationError("clinic percentage %s is outside [0, 100]", s.ClinicPercent)
	}
	if s.DoctorPercent.IsNegative() || s.DoctorPercent.GreaterThan(hundred) {
		return validationError("doctor percentage %s is outside [0, 100]", s.DoctorPercent)
	}
	if !s.ClinicPercent.Equal(s.ClinicPercent.Round(percentScale)) {
		return validationError("clinic percentage %s has more than %d decimal places", s.ClinicPercent, percentScale)
	}
	if !s.DoctorPercent.Equal(s.DoctorPercent.Round(percentScale)) {
		return validationError("doctor percentage %s has more than %d decimal places", s.DoctorPercent, percentScale)
	}
	if sum := s.ClinicPercent.Add(s.DoctorPercent); !sum.Equal(hundred) {
		return validationError("clinic and doctor percentages must sum to 100, got %s", sum)
	}
	return nil
}

// Shares is the result of splitting one payment
type Shares struct {
	Net    decimal.Decimal `json:"net"`
	Clinic decimal.Decimal `json:"clinic_share"`
	Doctor decimal.Decimal `json:"doctor_share"`
}

// ComputeShares splits total - discounts + taxes between clinic and doctor.
//
// The clinic share is rounded half-to-even to cents and the doctor share is the remainder,
// so Clinic + Doctor == Net exactly. A negative net is split the same way; rejecting it is
// the caller's business.
func ComputeShares(total, discounts, taxes decimal.Decimal, split Split) (Shares, error) {
	if err := split.Validate(); err != nil {
		return Shares{}, err
	}

	net := total.Sub(discounts).Add(taxes)
	clinic := net.Mul(split.ClinicPercent).Div(hundred).RoundBank(2)

	return Shares{
		Net:    net,
		Clinic: clinic,
		Doctor: net.Sub(clinic),
	}, nil
}
