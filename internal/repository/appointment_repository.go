package repository

import (
	"context"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"

	"gorm.io/gorm"
)

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Appointment, int64, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Treatment").
		First(&appointment, id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindByPatient returns the patient's appointments with their treatment loaded
func (r *appointmentRepository) FindByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where("patient_id = ?", patientID).
		Order("date ASC, id ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.Version == 0 {
		appointment.Version = 1
	}
	return r.db.WithContext(ctx).Omit("Patient", "Doctor", "Treatment").Create(appointment).Error
}

// Update writes the appointment only if its version still matches the stored one,
// then bumps the version. A mismatch returns ErrStaleObject.
func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	res := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND version = ?", appointment.ID, appointment.Version).
		Updates(map[string]interface{}{
			"patient_id":   appointment.PatientID,
			"doctor_id":    appointment.DoctorID,
			"treatment_id": appointment.TreatmentID,
			"date":         appointment.Date,
			"status":       appointment.Status,
			"notes":        appointment.Notes,
			"version":      appointment.Version + 1,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleObject
	}
	appointment.Version++
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, query *ListQuery) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Appointment{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Joins("JOIN patients ON patients.id = appointments.patient_id").
			Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
			Joins("JOIN treatments ON treatments.id = appointments.treatment_id").
			Where("patients.name ILIKE ? OR doctors.name ILIKE ? OR treatments.name ILIKE ? OR appointments.notes ILIKE ?",
				search, search, search, search)
	}
	if status := query.Filters["status"]; status != "" {
		db = db.Where("appointments.status = ?", status)
	}
	if patientID := query.Filters["patient_id"]; patientID != "" {
		db = db.Where("appointments.patient_id = ?", patientID)
	}
	if doctorID := query.Filters["doctor_id"]; doctorID != "" {
		db = db.Where("appointments.doctor_id = ?", doctorID)
	}
	if from := query.Filters["start_date"]; from != "" {
		db = db.Where("appointments.date >= ?", from)
	}
	if to := query.Filters["end_date"]; to != "" {
		db = db.Where("appointments.date <= ?", to)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{"date": "appointments.date", "status": "appointments.status"}
	err := query.paginate(db, sortable, "appointments.date ASC").
		Preload("Patient").
		Preload("Doctor").
		Preload("Treatment").
		Find(&appointments).Error
	return appointments, total, err
}
