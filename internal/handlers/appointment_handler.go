package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// AppointmentRequest creates or updates an appointment. Version is required on update
// and must match the stored version.
type AppointmentRequest struct {
	PatientID   uint      `json:"patient_id" binding:"required"`
	DoctorID    uint      `json:"doctor_id" binding:"required"`
	TreatmentID uint      `json:"treatment_id" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,appointment_status"`
	Notes       string    `json:"notes"`
	Version     uint      `json:"version"`
}

func (r *AppointmentRequest) toModel() *models.Appointment {
	return &models.Appointment{
		PatientID:   r.PatientID,
		DoctorID:    r.DoctorID,
		TreatmentID: r.TreatmentID,
		Date:        r.Date,
		Status:      r.Status,
		Notes:       r.Notes,
		Version:     r.Version,
	}
}

// @Summary List Appointments
// @Tags Appointments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "pending, confirmed or cancelled"
// @Param patient_id query int false "Filter by patient"
// @Param doctor_id query int false "Filter by doctor"
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /appointments [get]
func (h *AppointmentHandler) Index(c *gin.Context) {
	query := listQuery(c, "status", "patient_id", "doctor_id", "start_date", "end_date")

	appointments, total, err := h.appointmentService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, appointments[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"appointments": responses, "pagination": pagination(query, total)})
}

// @Summary Get Appointment
// @Tags Appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} models.AppointmentResponse
// @Router /appointments/{appointment_id} [get]
func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "appointment_id")
	if !ok {
		return
	}
	appointment, err := h.appointmentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment.ToResponse()})
}

// @Summary Create Appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body AppointmentRequest true "Appointment data"
// @Success 201 {object} models.AppointmentResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if !bindRequest(c, "appointment", &req) {
		return
	}
	appointment := req.toModel()
	if err := h.appointmentService.Create(c.Request.Context(), appointment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appointment.ToResponse()})
}

// @Summary Update Appointment
// @Description Update an appointment under optimistic locking; a stale version returns 409
// @Tags Appointments
// @Accept json
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Param request body AppointmentRequest true "Appointment data"
// @Success 200 {object} models.AppointmentResponse
// @Failure 409 {object} map[string]string
// @Router /appointments/{appointment_id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "appointment_id")
	if !ok {
		return
	}
	var req AppointmentRequest
	if !bindRequest(c, "appointment", &req) {
		return
	}
	appointment, err := h.appointmentService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment.ToResponse()})
}

// @Summary Delete Appointment
// @Description Appointments with recorded payments cannot be deleted
// @Tags Appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{appointment_id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "appointment_id")
	if !ok {
		return
	}
	if err := h.appointmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// @Summary Confirm Appointment
// @Tags Appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} models.AppointmentResponse
// @Failure 409 {object} map[string]string
// @Router /appointments/{appointment_id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyEvent(c, h.appointmentService.Confirm)
}

// @Summary Cancel Appointment
// @Tags Appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} models.AppointmentResponse
// @Failure 409 {object} map[string]string
// @Router /appointments/{appointment_id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyEvent(c, h.appointmentService.Cancel)
}

// @Summary Reopen Appointment
// @Description Move a confirmed or cancelled appointment back to pending
// @Tags Appointments
// @Produce json
// @Param appointment_id path int true "Appointment ID"
// @Success 200 {object} models.AppointmentResponse
// @Failure 409 {object} map[string]string
// @Router /appointments/{appointment_id}/reopen [post]
func (h *AppointmentHandler) Reopen(c *gin.Context) {
	h.applyEvent(c, h.appointmentService.Reopen)
}

func (h *AppointmentHandler) applyEvent(c *gin.Context, event func(ctx context.Context, id uint) (*models.Appointment, error)) {
	id, ok := pathID(c, "appointment_id")
	if !ok {
		return
	}
	appointment, err := event(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment.ToResponse()})
}
