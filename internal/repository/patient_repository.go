package repository

import (
	"context"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
)

// PatientRepository defines the interface for patient data access
type PatientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	UpdateImage(ctx context.Context, id uint, imagePath, thumbnailPath *string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Patient, int64, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// Update saves the editable fields; image paths are only changed through UpdateImage
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	res := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", patient.ID).
		Updates(map[string]interface{}{
			"name":            patient.Name,
			"age":             patient.Age,
			"gender":          patient.Gender,
			"phone":           patient.Phone,
			"address":         patient.Address,
			"medical_history": patient.MedicalHistory,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *patientRepository) UpdateImage(ctx context.Context, id uint, imagePath, thumbnailPath *string) error {
	return r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_path":     imagePath,
			"thumbnail_path": thumbnailPath,
		}).Error
}

func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Patient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context, query *ListQuery) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Patient{})
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ? OR address ILIKE ?", search, search, search)
	}
	if gender := query.Filters["gender"]; gender != "" {
		db = db.Where("gender = ?", gender)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{"name": "name", "age": "age", "created_at": "created_at"}
	err := query.paginate(db, sortable, "name ASC").Find(&patients).Error
	return patients, total, err
}
