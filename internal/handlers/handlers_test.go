package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

type stubRules struct {
	repository.PercentageRuleRepository
	rules []models.TreatmentPercentage
}

func (r *stubRules) FindByPair(ctx context.Context, treatmentID, doctorID uint) ([]models.TreatmentPercentage, error) {
	var out []models.TreatmentPercentage
	for _, rule := range r.rules {
		if rule.TreatmentID == treatmentID && rule.DoctorID == doctorID {
			out = append(out, rule)
		}
	}
	return out, nil
}

type stubAppointments struct {
	repository.AppointmentRepository
	appointments map[uint]models.Appointment
}

func (r *stubAppointments) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *stubAppointments) Update(ctx context.Context, a *models.Appointment) error {
	a.Version++
	r.appointments[a.ID] = *a
	return nil
}

type stubPayments struct {
	repository.PaymentRepository
	payments []models.Payment
}

func (r *stubPayments) List(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if filter.From != nil && p.DatePaid.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.DatePaid.After(*filter.To) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type failingPinger struct{ err error }

func (p failingPinger) PingContext(ctx context.Context) error { return p.err }

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err      error
		status   int
		wantCode string
	}{
		{fmt.Errorf("%w: patient 3", services.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: bad split", services.ErrValidation), http.StatusUnprocessableEntity, "validation"},
		{fmt.Errorf("%w: stale", services.ErrConflict), http.StatusConflict, "conflict"},
		{fmt.Errorf("%w: duplicate rules", services.ErrConfiguration), http.StatusInternalServerError, "configuration"},
		{fmt.Errorf("%w: timeout", services.ErrStorage), http.StatusServiceUnavailable, "storage_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code := errorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestParseDate(t *testing.T) {
	start, err := parseDate("2024-03-10", false)
	require.NoError(t, err)
	assert.Equal(t, 0, start.Hour())

	end, err := parseDate("2024-03-10", true)
	require.NoError(t, err)
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Add(time.Nanosecond).Equal(start.AddDate(0, 0, 1)))

	exact, err := parseDate("2024-03-10T08:30:00Z", true)
	require.NoError(t, err)
	assert.Equal(t, 8, exact.Hour(), "timestamps are taken as given")

	_, err = parseDate("10/03/2024", false)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ok", NewHealthHandler(nil).Index)
	router.GET("/down", NewHealthHandler(failingPinger{err: errors.New("refused")}).Index)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/ok").Code)

	w := serve(router, http.MethodGet, "/down")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable")
}

func TestPercentageResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rules := &stubRules{rules: []models.TreatmentPercentage{
		{ID: 1, TreatmentID: 2, DoctorID: 3, ClinicPercentage: decimal.NewFromInt(70), DoctorPercentage: decimal.NewFromInt(30)},
	}}
	h := NewPercentageHandler(services.NewPercentageService(rules, nil, nil, false, time.Second))
	router := gin.New()
	router.GET("/percentages/resolve", h.Resolve)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantClinic string
	}{
		{"registered pair", "treatment_id=2&doctor_id=3", http.StatusOK, "70"},
		{"default split", "treatment_id=2&doctor_id=9", http.StatusOK, "50"},
		{"missing doctor", "treatment_id=2", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/percentages/resolve?"+tt.query)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantClinic == "" {
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantClinic, body["clinic_percentage"])
		})
	}
}

func TestAppointmentEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubAppointments{appointments: map[uint]models.Appointment{
		1: {ID: 1, Status: models.AppointmentStatusPending, Version: 1},
		2: {ID: 2, Status: models.AppointmentStatusCancelled, Version: 1},
	}}
	svc := services.NewAppointmentService(repo, nil, nil, nil, nil, nil, time.Second)
	h := NewAppointmentHandler(svc)
	router := gin.New()
	router.POST("/appointments/:appointment_id/confirm", h.Confirm)

	w := serve(router, http.MethodPost, "/appointments/1/confirm")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = serve(router, http.MethodPost, "/appointments/2/confirm")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"conflict"`)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/appointments/99/confirm").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/appointments/abc/confirm").Code)
}

func TestReportLedgerCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	paid := time.Date(2024, 3, 10, 15, 45, 0, 0, time.Local)
	payments := &stubPayments{payments: []models.Payment{
		{ID: 1, AppointmentID: 4, TotalAmount: decimal.NewFromInt(100), ClinicShare: decimal.NewFromInt(60), DoctorShare: decimal.NewFromInt(40), DatePaid: paid},
		{ID: 2, AppointmentID: 5, TotalAmount: decimal.NewFromInt(80), ClinicShare: decimal.NewFromInt(40), DoctorShare: decimal.NewFromInt(40), DatePaid: paid.AddDate(0, 0, 5)},
	}}
	reports := services.NewReportService(nil, nil, payments, nil, time.Second)
	h := NewReportHandler(reports, services.NewExportService("Cura"))
	router := gin.New()
	router.GET("/reports/ledger_csv", h.LedgerCSV)
	router.GET("/reports/ledger", h.Ledger)

	// A plain end date includes the afternoon payment on that day
	w := serve(router, http.MethodGet, "/reports/ledger_csv?start_date=2024-03-01&end_date=2024-03-10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger_2024-03-01_2024-03-10.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Appointment,Total,Clinic Share,Doctor Share,Date Paid", lines[0])
	assert.Equal(t, "4,100.00,60.00,40.00,2024-03-10 15:45", lines[1])

	w = serve(router, http.MethodGet, "/reports/ledger?start_date=2024-04-01&end_date=2024-03-01")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(router, http.MethodGet, "/reports/ledger?start_date=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
