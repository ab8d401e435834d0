package services

import (
	"strings"
	"testing"

	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	t.Run("Should pass valid request", func(t *testing.T) {
		err := validateRequest(models.CustomerRequest{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
		})

		assert.NoError(t, err)
	})

	t.Run("Should use json tag names for fields", func(t *testing.T) {
		email := "not-an-email"

		err := validateRequest(models.CustomerRequest{
			CustomerID:   "ALFKI",
			CompanyName:  "Alfreds Futterkiste",
			ContactEmail: &email,
		})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "contactEmail", validationErr.Fields[0].Field)
		assert.Equal(t, "not-an-email", validationErr.Fields[0].Rejected)
		assert.Equal(t, "contactEmail must be valid", validationErr.Fields[0].Message)
	})

	t.Run("Should collect every failed field", func(t *testing.T) {
		city := strings.Repeat("x", 16)
		phone := strings.Repeat("9", 25)

		err := validateRequest(models.CustomerRequest{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
			City:        &city,
			Phone:       &phone,
		})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 2)
		assert.Equal(t, "city", validationErr.Fields[0].Field)
		assert.Equal(t, "city must not exceed 15 characters", validationErr.Fields[0].Message)
		assert.Equal(t, "phone", validationErr.Fields[1].Field)
		assert.Equal(t, "phone must not exceed 24 characters", validationErr.Fields[1].Message)
	})

	t.Run("Should describe error in message", func(t *testing.T) {
		err := validateRequest(models.CustomerRequest{CustomerID: "ALFKI"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "companyName is required")
	})
}
