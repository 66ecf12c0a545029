package repository

import (
	"context"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
)

// TreatmentRepository defines the interface for treatment catalog access
type TreatmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Treatment, error)
	Create(ctx context.Context, treatment *models.Treatment) error
	Update(ctx context.Context, treatment *models.Treatment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Treatment, int64, error)
}

type treatmentRepository struct {
	db *gorm.DB
}

// NewTreatmentRepository creates a new treatment repository
func NewTreatmentRepository(db *gorm.DB) TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) FindByID(ctx context.Context, id uint) (*models.Treatment, error) {
	var treatment models.Treatment
	if err := r.db.WithContext(ctx).First(&treatment, id).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *models.Treatment) error {
	return r.db.WithContext(ctx).Create(treatment).Error
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	res := r.db.WithContext(ctx).Model(&models.Treatment{}).
		Where("id = ?", treatment.ID).
		Updates(map[string]interface{}{
			"name":      treatment.Name,
			"base_cost": treatment.BaseCost,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Percentage rules belong to the treatment and go with it
		if err := tx.Where("treatment_id = ?", id).Delete(&models.TreatmentPercentage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Treatment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *treatmentRepository) List(ctx context.Context, query *ListQuery) ([]models.Treatment, int64, error) {
	var treatments []models.Treatment
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Treatment{})
	if query.Search != "" {
		db = db.Where("name ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{"name": "name", "base_cost": "base_cost"}
	err := query.paginate(db, sortable, "name ASC").Find(&treatments).Error
	return treatments, total, err
}
