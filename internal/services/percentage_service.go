package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
)

// PercentageService is the registry of treatment/doctor revenue splits
type PercentageService struct {
	rules   repository.PercentageRuleRepository
	tx      repository.TxManager
	audit   *AuditService
	strict  bool // Duplicate rules for a pair fail instead of resolving to the newest
	timeout time.Duration
}

func NewPercentageService(rules repository.PercentageRuleRepository, tx repository.TxManager, audit *AuditService, strict bool, timeout time.Duration) *PercentageService {
	return &PercentageService{
		rules:   rules,
		tx:      tx,
		audit:   audit,
		strict:  strict,
		timeout: timeout,
	}
}

// ResolveSplit returns the split registered for the pair, or DefaultSplit when none is.
// Resolution is read-only, so repeated calls without an intervening RegisterSplit agree.
func (s *PercentageService) ResolveSplit(ctx context.Context, treatmentID, doctorID uint) (Split, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.resolve(ctx, s.rules, treatmentID, doctorID)
}

// resolve runs against the given repository so RecordPayment can resolve inside its transaction
func (s *PercentageService) resolve(ctx context.Context, rules repository.PercentageRuleRepository, treatmentID, doctorID uint) (Split, error) {
	found, err := rules.FindByPair(ctx, treatmentID, doctorID)
	if err != nil {
		return Split{}, translateError(err, "percentage rule")
	}

	switch {
	case len(found) == 0:
		return DefaultSplit, nil
	case len(found) > 1:
		if s.strict {
			return Split{}, fmt.Errorf("%w: %d rules registered for treatment %d and doctor %d",
				ErrConfiguration, len(found), treatmentID, doctorID)
		}
		logger.FromContext(ctx).Warn("[Percentage] Duplicate split rules, using the newest",
			"treatment_id", treatmentID, "doctor_id", doctorID, "rule_id", found[0].ID)
	}

	split := Split{
		ClinicPercent: found[0].ClinicPercentage,
		DoctorPercent: found[0].DoctorPercentage,
	}
	if err := split.Validate(); err != nil {
		return Split{}, fmt.Errorf("%w: stored rule %d is invalid: %w", ErrConfiguration, found[0].ID, err)
	}
	return split, nil
}

// RegisterSplit stores the split for a treatment/doctor pair, replacing any previous one
func (s *PercentageService) RegisterSplit(ctx context.Context, treatmentID, doctorID uint, split Split) (*models.TreatmentPercentage, error) {
	if err := split.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var stored *models.TreatmentPercentage
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.Treatment.FindByID(ctx, treatmentID); err != nil {
			return translateError(err, fmt.Sprintf("treatment %d", treatmentID))
		}
		if _, err := repos.Doctor.FindByID(ctx, doctorID); err != nil {
			return translateError(err, fmt.Sprintf("doctor %d", doctorID))
		}

		rule := &models.TreatmentPercentage{
			TreatmentID:      treatmentID,
			DoctorID:         doctorID,
			ClinicPercentage: split.ClinicPercent,
			DoctorPercentage: split.DoctorPercent,
		}
		if err := repos.Percentage.Upsert(ctx, rule); err != nil {
			return translateError(err, "percentage rule")
		}

		rules, err := repos.Percentage.FindByPair(ctx, treatmentID, doctorID)
		if err != nil {
			return translateError(err, "percentage rule")
		}
		if len(rules) == 0 {
			return fmt.Errorf("%w: percentage rule vanished after upsert", ErrStorage)
		}
		stored = &rules[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.AuditActionRegisterSplit, "treatment_percentage", stored.ID, map[string]any{
		"treatment_id":      treatmentID,
		"doctor_id":         doctorID,
		"clinic_percentage": split.ClinicPercent,
		"doctor_percentage": split.DoctorPercent,
	})
	logger.FromContext(ctx).Info("[Percentage] Split registered", "treatment_id", treatmentID, "doctor_id", doctorID,
		"clinic", split.ClinicPercent.String(), "doctor", split.DoctorPercent.String())

	return stored, nil
}

// ListSplits returns registered rules, optionally for one treatment only
func (s *PercentageService) ListSplits(ctx context.Context, treatmentID *uint) ([]models.TreatmentPercentage, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	rules, err := s.rules.List(ctx, treatmentID)
	if err != nil {
		return nil, translateError(err, "percentage rules")
	}
	return rules, nil
}
