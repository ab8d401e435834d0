package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Имена полей в ошибках валидации берем из json-тегов,
	// чтобы клиент видел те же имена, что отправлял.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateRequest проверяет запрос целиком и возвращает полный список
// ошибок полей, а не первую встретившуюся.
func validateRequest(request interface{}) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("ошибка при валидации запроса: %w", err)
	}

	fields := make([]models.FieldError, len(validationErrors))
	for i, fieldError := range validationErrors {
		fields[i] = models.FieldError{
			Field:    fieldError.Field(),
			Rejected: fmt.Sprintf("%v", fieldError.Value()),
			Message:  fieldMessage(fieldError),
		}
	}

	return &models.ValidationError{Fields: fields}
}

// fieldMessage формирует человекочитаемое сообщение по правилу валидации.
func fieldMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fieldError.Field(), fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldError.Field(), fieldError.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldError.Field(), fieldError.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldError.Field(), fieldError.Param())
	case "email":
		return fmt.Sprintf("%s must be valid", fieldError.Field())
	}

	return fmt.Sprintf("%s is invalid", fieldError.Field())
}
