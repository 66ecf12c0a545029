package handlers

import (
	"net/http"

	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PercentageHandler exposes the clinic/doctor revenue split registry
type PercentageHandler struct {
	percentageService *services.PercentageService
}

func NewPercentageHandler(percentageService *services.PercentageService) *PercentageHandler {
	return &PercentageHandler{percentageService: percentageService}
}

type RegisterSplitRequest struct {
	DoctorID         uint            `json:"doctor_id" binding:"required"`
	ClinicPercentage decimal.Decimal `json:"clinic_percentage" swaggertype:"string" example:"60"`
	DoctorPercentage decimal.Decimal `json:"doctor_percentage" swaggertype:"string" example:"40"`
}

// @Summary List Treatment Splits
// @Description Registered clinic/doctor splits for a treatment
// @Tags Percentages
// @Produce json
// @Param treatment_id path int true "Treatment ID"
// @Success 200 {array} models.TreatmentPercentage
// @Router /treatments/{treatment_id}/percentages [get]
func (h *PercentageHandler) Index(c *gin.Context) {
	treatmentID, ok := pathID(c, "treatment_id")
	if !ok {
		return
	}
	rules, err := h.percentageService.ListSplits(c.Request.Context(), &treatmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"percentages": rules})
}

// @Summary Register Split
// @Description Create or replace the clinic/doctor split for a treatment and doctor. Both
// @Description percentages must lie in [0, 100] and add up to 100.
// @Tags Percentages
// @Accept json
// @Produce json
// @Param treatment_id path int true "Treatment ID"
// @Param request body RegisterSplitRequest true "Split"
// @Success 201 {object} models.TreatmentPercentage
// @Failure 422 {object} map[string]string
// @Router /treatments/{treatment_id}/percentages [post]
func (h *PercentageHandler) Create(c *gin.Context) {
	treatmentID, ok := pathID(c, "treatment_id")
	if !ok {
		return
	}
	var req RegisterSplitRequest
	if !bindRequest(c, "percentage", &req) {
		return
	}

	split := services.Split{ClinicPercent: req.ClinicPercentage, DoctorPercent: req.DoctorPercentage}
	rule, err := h.percentageService.RegisterSplit(c.Request.Context(), treatmentID, req.DoctorID, split)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"percentage": rule})
}

// @Summary Resolve Split
// @Description The split that would apply to a payment for this treatment and doctor
// @Tags Percentages
// @Produce json
// @Param treatment_id query int true "Treatment ID"
// @Param doctor_id query int true "Doctor ID"
// @Success 200 {object} services.Split
// @Router /percentages/resolve [get]
func (h *PercentageHandler) Resolve(c *gin.Context) {
	treatmentID, err := optionalUint(c, "treatment_id")
	if err != nil || treatmentID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "treatment_id is required"})
		return
	}
	doctorID, err := optionalUint(c, "doctor_id")
	if err != nil || doctorID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id is required"})
		return
	}

	split, err := h.percentageService.ResolveSplit(c.Request.Context(), *treatmentID, *doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"treatment_id":      *treatmentID,
		"doctor_id":         *doctorID,
		"clinic_percentage": split.ClinicPercent,
		"doctor_percentage": split.DoctorPercent,
	})
}
