package repository

import (
	"context"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
)

// DoctorRepository defines the interface for doctor data access
type DoctorRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Doctor, int64, error)
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	res := r.db.WithContext(ctx).Model(&models.Doctor{}).
		Where("id = ?", doctor.ID).
		Updates(map[string]interface{}{
			"name":      doctor.Name,
			"specialty": doctor.Specialty,
			"phone":     doctor.Phone,
			"email":     doctor.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Doctor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context, query *ListQuery) ([]models.Doctor, int64, error) {
	var doctors []models.Doctor
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Doctor{})
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR specialty ILIKE ? OR email ILIKE ?", search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{"name": "name", "specialty": "specialty", "created_at": "created_at"}
	err := query.paginate(db, sortable, "name ASC").Find(&doctors).Error
	return doctors, total, err
}
