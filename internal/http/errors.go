package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/Renal37/go-customer-finance/internal/middlewares"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// ErrorResponse описывает тело ответа об ошибке.
type ErrorResponse struct {
	Timestamp        utils.RFC3339Date   `json:"timestamp"`
	Status           int                 `json:"status"`
	Error            string              `json:"error"`
	Message          string              `json:"message"`
	ValidationErrors []models.FieldError `json:"validationErrors,omitempty"`
}

// writeValidationError отправляет ответ 400 с полным списком ошибок полей.
// Возвращает true, если err является ошибкой валидации и ответ отправлен.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	middlewares.EncodeJSONResponse(w, http.StatusBadRequest, ErrorResponse{
		Timestamp:        utils.RFC3339Date{Time: time.Now()},
		Status:           http.StatusBadRequest,
		Error:            "Bad Request",
		Message:          "Validation failed",
		ValidationErrors: validationErr.Fields,
	})

	return true
}
