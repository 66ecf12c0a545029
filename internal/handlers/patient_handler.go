package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/dralafandy/Cura-dental-app/internal/storage"
	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService   *services.PatientService
	reportService    *services.ReportService
	statementService *services.StatementService
}

func NewPatientHandler(patientService *services.PatientService, reportService *services.ReportService, statementService *services.StatementService) *PatientHandler {
	return &PatientHandler{
		patientService:   patientService,
		reportService:    reportService,
		statementService: statementService,
	}
}

// PatientRequest is the writable part of a patient record
type PatientRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            *int   `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

func (r *PatientRequest) toModel() *models.Patient {
	return &models.Patient{
		Name:           r.Name,
		Age:            r.Age,
		Gender:         r.Gender,
		Phone:          r.Phone,
		Address:        r.Address,
		MedicalHistory: r.MedicalHistory,
	}
}

// @Summary List Patients
// @Description Get a paginated list of patients
// @Tags Patients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or phone"
// @Param sort query string false "Sort, e.g. name-asc"
// @Success 200 {object} map[string]interface{}
// @Router /patients [get]
func (h *PatientHandler) Index(c *gin.Context) {
	query := listQuery(c)

	patients, total, err := h.patientService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, patients[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"patients": responses, "pagination": pagination(query, total)})
}

// @Summary Get Patient
// @Tags Patients
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Success 200 {object} models.PatientResponse
// @Failure 404 {object} map[string]string
// @Router /patients/{patient_id} [get]
func (h *PatientHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}
	patient, err := h.patientService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient.ToResponse()})
}

// @Summary Create Patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body PatientRequest true "Patient data"
// @Success 201 {object} models.PatientResponse
// @Failure 422 {object} map[string]interface{}
// @Router /patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	var req PatientRequest
	if !bindRequest(c, "patient", &req) {
		return
	}

	patient := req.toModel()
	if err := h.patientService.Create(c.Request.Context(), patient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"patient": patient.ToResponse()})
}

// @Summary Update Patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Param request body PatientRequest true "Patient data"
// @Success 200 {object} models.PatientResponse
// @Router /patients/{patient_id} [put]
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}
	var req PatientRequest
	if !bindRequest(c, "patient", &req) {
		return
	}

	patient, err := h.patientService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient.ToResponse()})
}

// @Summary Delete Patient
// @Description Delete a patient without appointments
// @Tags Patients
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /patients/{patient_id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}
	if err := h.patientService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// @Summary Upload Radiograph
// @Description Upload a JPG or PNG radiograph; a thumbnail is generated
// @Tags Patients
// @Accept multipart/form-data
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Param image formData file true "Radiograph"
// @Success 200 {object} models.PatientResponse
// @Router /patients/{patient_id}/image [post]
func (h *PatientHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	if header.Size > storage.MaxFileSize() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !storage.IsValidContentType(ct) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "only JPG and PNG images are accepted", "code": "validation"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxFileSize()+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	patient, err := h.patientService.UploadImage(c.Request.Context(), id, header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient.ToResponse()})
}

// @Summary Download Radiograph
// @Tags Patients
// @Produce image/jpeg,image/png
// @Param patient_id path int true "Patient ID"
// @Param thumbnail query bool false "Return the thumbnail"
// @Success 200 {file} file "radiograph"
// @Router /patients/{patient_id}/image [get]
func (h *PatientHandler) Image(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}

	rc, contentType, err := h.patientService.OpenImage(c.Request.Context(), id, c.Query("thumbnail") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

// @Summary Patient Balance
// @Description Outstanding amount over all of the patient's appointments
// @Tags Patients
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Success 200 {object} map[string]interface{}
// @Router /patients/{patient_id}/balance [get]
func (h *PatientHandler) Balance(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}

	statement, err := h.reportService.PatientStatement(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"patient_id":   id,
		"balance":      statement.TotalDue.StringFixed(2),
		"appointments": statement.Lines,
	})
}

// @Summary Patient Statement PDF
// @Description Download the patient's statement of account as PDF
// @Tags Patients
// @Produce application/pdf
// @Param patient_id path int true "Patient ID"
// @Success 200 {file} file "statement.pdf"
// @Router /patients/{patient_id}/statement_pdf [get]
func (h *PatientHandler) StatementPDF(c *gin.Context) {
	id, ok := pathID(c, "patient_id")
	if !ok {
		return
	}

	buf, err := h.statementService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=statement_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
