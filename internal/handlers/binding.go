package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// BindNestedOrFlat attempts to bind the request body to obj.
// It first checks if the body contains a nested object with the given key (e.g. {"patient": {...}}).
// If so, it binds that nested object to obj; otherwise the entire body is bound.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	// Restore body for future binding or subsequent reads
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			return json.Unmarshal(val, obj)
		}
	}
	return json.Unmarshal(bodyBytes, obj)
}

// bindRequest decodes the body like BindNestedOrFlat and then runs the binding validators.
// It writes the error response itself and reports whether the handler may continue.
func bindRequest(c *gin.Context, key string, obj interface{}) bool {
	if err := BindNestedOrFlat(c, key, obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return false
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonFieldName(fe)] = validationMessage(fe)
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "code": "validation", "fields": fields})
}

func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return strings.ToLower(fe.StructField())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "payment_method":
		return fmt.Sprintf("must be one of %s, %s, %s", models.PaymentMethodCash, models.PaymentMethodCard, models.PaymentMethodTransfer)
	case "appointment_status":
		return fmt.Sprintf("must be one of %s, %s, %s", models.AppointmentStatusPending, models.AppointmentStatusConfirmed, models.AppointmentStatusCancelled)
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	}
	return "is invalid (" + fe.Tag() + ")"
}

var registerOnce sync.Once

// RegisterValidators adds the clinic's custom tags to gin's validator. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return models.IsValidPaymentMethod(fl.Field().String())
		})
		_ = v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
			return models.IsValidAppointmentStatus(fl.Field().String())
		})
	})
}
