package handlers

import (
	"net/http"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DoctorHandler struct {
	doctorService *services.DoctorService
}

func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

type DoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

func (r *DoctorRequest) toModel() *models.Doctor {
	return &models.Doctor{Name: r.Name, Specialty: r.Specialty, Phone: r.Phone, Email: r.Email}
}

// @Summary List Doctors
// @Tags Doctors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or specialty"
// @Success 200 {object} map[string]interface{}
// @Router /doctors [get]
func (h *DoctorHandler) Index(c *gin.Context) {
	query := listQuery(c)
	doctors, total, err := h.doctorService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "pagination": pagination(query, total)})
}

// @Summary Get Doctor
// @Tags Doctors
// @Produce json
// @Param doctor_id path int true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Router /doctors/{doctor_id} [get]
func (h *DoctorHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "doctor_id")
	if !ok {
		return
	}
	doctor, err := h.doctorService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// @Summary Create Doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body DoctorRequest true "Doctor data"
// @Success 201 {object} models.Doctor
// @Router /doctors [post]
func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorRequest
	if !bindRequest(c, "doctor", &req) {
		return
	}
	doctor := req.toModel()
	if err := h.doctorService.Create(c.Request.Context(), doctor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

// @Summary Update Doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param doctor_id path int true "Doctor ID"
// @Param request body DoctorRequest true "Doctor data"
// @Success 200 {object} models.Doctor
// @Router /doctors/{doctor_id} [put]
func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "doctor_id")
	if !ok {
		return
	}
	var req DoctorRequest
	if !bindRequest(c, "doctor", &req) {
		return
	}
	doctor, err := h.doctorService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// @Summary Delete Doctor
// @Tags Doctors
// @Produce json
// @Param doctor_id path int true "Doctor ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /doctors/{doctor_id} [delete]
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "doctor_id")
	if !ok {
		return
	}
	if err := h.doctorService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

type TreatmentHandler struct {
	treatmentService *services.TreatmentService
}

func NewTreatmentHandler(treatmentService *services.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatmentService: treatmentService}
}

type TreatmentRequest struct {
	Name     string          `json:"name" binding:"required"`
	BaseCost decimal.Decimal `json:"base_cost" swaggertype:"string" example:"150.00"`
}

// @Summary List Treatments
// @Tags Treatments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Success 200 {object} map[string]interface{}
// @Router /treatments [get]
func (h *TreatmentHandler) Index(c *gin.Context) {
	query := listQuery(c)
	treatments, total, err := h.treatmentService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatments": treatments, "pagination": pagination(query, total)})
}

// @Summary Get Treatment
// @Tags Treatments
// @Produce json
// @Param treatment_id path int true "Treatment ID"
// @Success 200 {object} models.Treatment
// @Router /treatments/{treatment_id} [get]
func (h *TreatmentHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "treatment_id")
	if !ok {
		return
	}
	treatment, err := h.treatmentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatment": treatment})
}

// @Summary Create Treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Param request body TreatmentRequest true "Treatment data"
// @Success 201 {object} models.Treatment
// @Router /treatments [post]
func (h *TreatmentHandler) Create(c *gin.Context) {
	var req TreatmentRequest
	if !bindRequest(c, "treatment", &req) {
		return
	}
	treatment := &models.Treatment{Name: req.Name, BaseCost: req.BaseCost}
	if err := h.treatmentService.Create(c.Request.Context(), treatment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"treatment": treatment})
}

// @Summary Update Treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Param treatment_id path int true "Treatment ID"
// @Param request body TreatmentRequest true "Treatment data"
// @Success 200 {object} models.Treatment
// @Router /treatments/{treatment_id} [put]
func (h *TreatmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "treatment_id")
	if !ok {
		return
	}
	var req TreatmentRequest
	if !bindRequest(c, "treatment", &req) {
		return
	}
	treatment, err := h.treatmentService.Update(c.Request.Context(), id, &models.Treatment{Name: req.Name, BaseCost: req.BaseCost})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatment": treatment})
}

// @Summary Delete Treatment
// @Tags Treatments
// @Produce json
// @Param treatment_id path int true "Treatment ID"
// @Success 200 {object} map[string]string
// @Router /treatments/{treatment_id} [delete]
func (h *TreatmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "treatment_id")
	if !ok {
		return
	}
	if err := h.treatmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Treatment deleted"})
}
