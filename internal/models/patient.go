package models

import (
	"time"
)

// Patient represents a clinic patient
type Patient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null;index" json:"name"`
	Age            *int      `json:"age"`
	Gender         string    `gorm:"size:20" json:"gender"`
	Phone          string    `gorm:"size:40" json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history"`
	ImagePath      *string   `json:"-"` // Radiograph blob path
	ThumbnailPath  *string   `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for Patient
func (Patient) TableName() string {
	return "patients"
}

// HasImage returns true if a radiograph has been uploaded for the patient
func (p *Patient) HasImage() bool {
	return p.ImagePath != nil && *p.ImagePath != ""
}

// PatientResponse is the JSON response format for patients
type PatientResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Age            *int      `json:"age"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	HasImage       bool      `json:"has_image"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts Patient to PatientResponse
func (p *Patient) ToResponse() PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		Phone:          p.Phone,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		HasImage:       p.HasImage(),
		CreatedAt:      p.CreatedAt,
	}
}
