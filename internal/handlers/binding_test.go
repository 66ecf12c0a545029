package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactFields struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    contactFields
		expectError bool
	}{
		{
			name:     "Nested Structure",
			key:      "patient",
			body:     `{"patient": {"name": "Alice", "age": 30}}`,
			expected: contactFields{Name: "Alice", Age: 30},
		},
		{
			name:     "Flat Structure",
			key:      "patient",
			body:     `{"name": "Bob", "age": 25}`,
			expected: contactFields{Name: "Bob", Age: 25},
		},
		{
			name:     "Nested Structure with Missing Key Fallback",
			key:      "patient",
			body:     `{"other": "value", "name": "Charlie", "age": 40}`,
			expected: contactFields{Name: "Charlie", Age: 40},
		},
		{
			name:        "Invalid JSON",
			key:         "patient",
			body:        `{"name": "Eve", "age": "invalid"}`,
			expectError: true,
		},
		{
			name:        "Nested Key Present but Invalid Type",
			key:         "patient",
			body:        `{"patient": "some string"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result contactFields
			err := BindNestedOrFlat(c, tt.key, &result)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestRecordPaymentRequestValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantField   string
		wantMessage string
	}{
		{
			name:        "unknown payment method",
			body:        `{"appointment_id": 1, "total_amount": "100", "paid_amount": "100", "payment_method": "cheque"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantField:   "payment_method",
			wantMessage: "must be one of cash, card, transfer",
		},
		{
			name:        "missing appointment",
			body:        `{"payment": {"total_amount": 100, "paid_amount": 100, "payment_method": "cash"}}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantField:   "appointment_id",
			wantMessage: "is required",
		},
		{
			name:       "malformed amount",
			body:       `{"appointment_id": 1, "total_amount": "abc", "payment_method": "cash"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	// The handler never reaches the service for invalid requests
	h := NewPaymentHandler(nil)
	router := gin.New()
	router.POST("/payments", h.Create)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField == "" {
				return
			}
			var body struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Fields[tt.wantField])
		})
	}
}
