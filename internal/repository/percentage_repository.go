package repository

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PercentageRuleRepository defines the interface for treatment/doctor split rules
type PercentageRuleRepository interface {
	// FindByPair returns the rules stored for the pair, newest first. More than one row
	// only happens with data loaded around the unique index.
	FindByPair(ctx context.Context, treatmentID, doctorID uint) ([]models.TreatmentPercentage, error)
	Upsert(ctx context.Context, rule *models.TreatmentPercentage) error
	List(ctx context.Context, treatmentID *uint) ([]models.TreatmentPercentage, error)
}

type percentageRuleRepository struct {
	db *gorm.DB
}

// NewPercentageRuleRepository creates a new percentage rule repository
func NewPercentageRuleRepository(db *gorm.DB) PercentageRuleRepository {
	return &percentageRuleRepository{db: db}
}

func (r *percentageRuleRepository) FindByPair(ctx context.Context, treatmentID, doctorID uint) ([]models.TreatmentPercentage, error) {
	var rules []models.TreatmentPercentage
	err := r.db.WithContext(ctx).
		Where("treatment_id = ? AND doctor_id = ?", treatmentID, doctorID).
		Order("id DESC").
		Limit(2).
		Find(&rules).Error
	return rules, err
}

// Upsert inserts the rule or overwrites the percentages of the existing pair
func (r *percentageRuleRepository) Upsert(ctx context.Context, rule *models.TreatmentPercentage) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "treatment_id"}, {Name: "doctor_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"clinic_percentage": rule.ClinicPercentage,
				"doctor_percentage": rule.DoctorPercentage,
				"updated_at":        time.Now(),
			}),
		}).
		Create(rule).Error
}

func (r *percentageRuleRepository) List(ctx context.Context, treatmentID *uint) ([]models.TreatmentPercentage, error) {
	var rules []models.TreatmentPercentage
	db := r.db.WithContext(ctx).Preload("Treatment").Preload("Doctor")
	if treatmentID != nil {
		db = db.Where("treatment_id = ?", *treatmentID)
	}
	err := db.Order("treatment_id ASC, doctor_id ASC").Find(&rules).Error
	return rules, err
}
