package handlers

import (
	"net/http"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest records one payment against an appointment. Amounts may be sent as
// JSON numbers or strings; discounts and taxes default to zero.
type RecordPaymentRequest struct {
	AppointmentID uint            `json:"appointment_id" binding:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"string" example:"250.00"`
	PaidAmount    decimal.Decimal `json:"paid_amount" swaggertype:"string" example:"250.00"`
	PaymentMethod string          `json:"payment_method" binding:"required,payment_method" example:"cash"`
	Discounts     decimal.Decimal `json:"discounts" swaggertype:"string" example:"0"`
	Taxes         decimal.Decimal `json:"taxes" swaggertype:"string" example:"0"`
}

// @Summary List Payments
// @Description Payments ordered by payment date. Date bounds are inclusive.
// @Tags Payments
// @Produce json
// @Param start_date query string false "From (YYYY-MM-DD or RFC 3339)"
// @Param end_date query string false "To (YYYY-MM-DD or RFC 3339)"
// @Param appointment_id query int false "Filter by appointment"
// @Param patient_id query int false "Filter by patient"
// @Param doctor_id query int false "Filter by doctor"
// @Param payment_method query string false "cash, card or transfer"
// @Success 200 {object} map[string]interface{}
// @Router /payments [get]
func (h *PaymentHandler) Index(c *gin.Context) {
	var filter repository.PaymentFilter
	var err error

	if filter.From, err = optionalDate(c, "start_date", false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.To, err = optionalDate(c, "end_date", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for name, dst := range map[string]**uint{
		"appointment_id": &filter.AppointmentID,
		"patient_id":     &filter.PatientID,
		"doctor_id":      &filter.DoctorID,
	} {
		if *dst, err = optionalUint(c, name); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	filter.Method = c.Query("payment_method")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}

// @Summary Get Payment
// @Tags Payments
// @Produce json
// @Param payment_id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	payment, err := h.paymentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// @Summary Record Payment
// @Description Split a payment between clinic and doctor and append it to the ledger.
// @Description Send an Idempotency-Key header to make retries safe.
// @Tags Payments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key for safe retries"
// @Param request body RecordPaymentRequest true "Payment"
// @Success 201 {object} models.Payment
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req RecordPaymentRequest
	if !bindRequest(c, "payment", &req) {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), services.RecordPaymentInput{
		AppointmentID: req.AppointmentID,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		Discounts:     req.Discounts,
		Taxes:         req.Taxes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}
