package models

import (
	"time"
)

// Appointment is a scheduled visit of a patient with a doctor for a treatment
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint      `gorm:"not null;index" json:"doctor_id"`
	TreatmentID uint      `gorm:"not null;index" json:"treatment_id"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Status      string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Version     uint      `gorm:"not null;default:1" json:"version"` // Optimistic lock counter
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Patient   Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"doctor,omitempty"`
	Treatment Treatment `gorm:"foreignKey:TreatmentID;constraint:OnDelete:RESTRICT" json:"treatment,omitempty"`
}

// TableName specifies the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

// Appointment status constants
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// IsValidAppointmentStatus reports whether s is a known appointment status
func IsValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// AppointmentResponse is the JSON response format for appointments
type AppointmentResponse struct {
	ID            uint      `json:"id"`
	PatientID     uint      `json:"patient_id"`
	DoctorID      uint      `json:"doctor_id"`
	TreatmentID   uint      `json:"treatment_id"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	Version       uint      `json:"version"`
	PatientName   string    `json:"patient_name,omitempty"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	TreatmentName string    `json:"treatment_name,omitempty"`
}

// ToResponse converts Appointment to AppointmentResponse
func (a *Appointment) ToResponse() AppointmentResponse {
	resp := AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		DoctorID:    a.DoctorID,
		TreatmentID: a.TreatmentID,
		Date:        a.Date,
		Status:      a.Status,
		Notes:       a.Notes,
		Version:     a.Version,
	}
	if a.Patient.ID != 0 {
		resp.PatientName = a.Patient.Name
	}
	if a.Doctor.ID != 0 {
		resp.DoctorName = a.Doctor.Name
	}
	if a.Treatment.ID != 0 {
		resp.TreatmentName = a.Treatment.Name
	}
	return resp
}
