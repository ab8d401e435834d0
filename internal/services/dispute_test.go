package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Renal37/go-customer-finance/internal/database"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDuplicateChargeDispute(t *testing.T) {
	order := &database.OrderDB{ID: 42, OrderNumber: "ORD-1001", CustomerID: "ALFKI"}

	request := models.DisputeRequest{
		CustomerID:  "ALFKI",
		OrderID:     42,
		Description: "Charged twice for order",
	}

	t.Run("Should return validation error for empty request", func(t *testing.T) {
		service := NewFinanceService(&financeStorageStub{})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), models.DisputeRequest{})

		require.Error(t, err)
		assert.Nil(t, dispute)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 3)
		assert.Equal(t, "customerId", validationErr.Fields[0].Field)
		assert.Equal(t, "orderId", validationErr.Fields[1].Field)
		assert.Equal(t, "description", validationErr.Fields[2].Field)
	})

	t.Run("Should return error when order isn't exist", func(t *testing.T) {
		service := NewFinanceService(&financeStorageStub{})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, dispute)
	})

	t.Run("Should return error when order belongs to another customer", func(t *testing.T) {
		countCalled := false

		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return &database.OrderDB{ID: 42, CustomerID: "ANATR"}, nil
			},
			countActiveDisputes: func(ctx context.Context, orderID int64, disputeType string) (int64, error) {
				countCalled = true
				return 0, nil
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		assert.ErrorIs(t, err, ErrOrderOwnership)
		assert.Nil(t, dispute)
		assert.False(t, countCalled)
	})

	t.Run("Should return conflict when active dispute already exists", func(t *testing.T) {
		createCalled := false

		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return order, nil
			},
			countActiveDisputes: func(ctx context.Context, orderID int64, disputeType string) (int64, error) {
				assert.Equal(t, int64(42), orderID)
				assert.Equal(t, "DUPLICATE_CHARGE", disputeType)
				return 1, nil
			},
			createDispute: func(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error) {
				createCalled = true
				return &dispute, nil
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		assert.ErrorIs(t, err, ErrActiveDisputeExists)
		assert.Nil(t, dispute)
		assert.False(t, createCalled)
	})

	t.Run("Should start dispute", func(t *testing.T) {
		var stored database.DisputeDB

		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return order, nil
			},
			createDispute: func(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error) {
				stored = dispute
				dispute.ID = 7
				return &dispute, nil
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, "DUPLICATE_CHARGE", stored.DisputeType)
		assert.Equal(t, "OPEN", stored.Status)
		assert.True(t, strings.HasPrefix(stored.DisputeNumber, "DISP-"))
		require.NotNil(t, stored.Description)
		assert.Equal(t, "Charged twice for order", *stored.Description)
		assert.False(t, stored.DisputeDate.IsZero())

		assert.Equal(t, int64(7), dispute.ID)
		assert.Equal(t, models.DisputeTypeDuplicateCharge, dispute.DisputeType)
		assert.Equal(t, models.DisputeStatusOpen, dispute.Status)
		assert.Equal(t, "Charged twice for order", dispute.Description)
	})

	t.Run("Should retry with a new number on collision", func(t *testing.T) {
		attempts := 0
		numbers := make([]string, 0, 2)

		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return order, nil
			},
			createDispute: func(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error) {
				attempts++
				numbers = append(numbers, dispute.DisputeNumber)
				if attempts == 1 {
					return nil, database.ErrDuplicateDisputeNumber
				}
				return &dispute, nil
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.NotEqual(t, numbers[0], numbers[1])
		assert.Equal(t, numbers[1], dispute.DisputeNumber)
	})

	t.Run("Should return conflict when insert loses the race", func(t *testing.T) {
		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return order, nil
			},
			createDispute: func(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error) {
				return nil, database.ErrActiveDisputeExists
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		assert.ErrorIs(t, err, ErrActiveDisputeExists)
		assert.Nil(t, dispute)
	})

	t.Run("Should give up after exhausting number attempts", func(t *testing.T) {
		attempts := 0

		service := NewFinanceService(&financeStorageStub{
			findOrder: func(ctx context.Context, orderID int64) (*database.OrderDB, error) {
				return order, nil
			},
			createDispute: func(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error) {
				attempts++
				return nil, database.ErrDuplicateDisputeNumber
			},
		})

		dispute, err := service.StartDuplicateChargeDispute(context.Background(), request)

		require.Error(t, err)
		assert.Nil(t, dispute)
		assert.Equal(t, numberAttempts, attempts)
	})
}

func TestGetDisputesByCustomer(t *testing.T) {
	disputeDate := time.Date(2009, 11, 17, 0, 0, 0, 0, time.UTC)

	t.Run("Should return disputes", func(t *testing.T) {
		service := NewFinanceService(&financeStorageStub{
			findDisputesByCustomer: func(ctx context.Context, customerID string) ([]database.DisputeDB, error) {
				assert.Equal(t, "ALFKI", customerID)
				return []database.DisputeDB{
					{
						ID:            7,
						DisputeNumber: "DISP-1A2B3C4D",
						OrderID:       42,
						CustomerID:    "ALFKI",
						DisputeType:   "DUPLICATE_CHARGE",
						Status:        "OPEN",
						DisputeDate:   disputeDate,
					},
				}, nil
			},
		})

		disputes, err := service.GetDisputesByCustomer(context.Background(), "ALFKI")

		require.NoError(t, err)
		require.Len(t, disputes, 1)
		assert.Equal(t, "DISP-1A2B3C4D", disputes[0].DisputeNumber)
		assert.Equal(t, models.DisputeStatusOpen, disputes[0].Status)
		assert.Equal(t, "", disputes[0].Description)
		assert.Nil(t, disputes[0].ResolvedDate)
		assert.Equal(t, disputeDate, disputes[0].DisputeDate.Time)
	})

	t.Run("Should return empty list when customer has no disputes", func(t *testing.T) {
		service := NewFinanceService(&financeStorageStub{})

		disputes, err := service.GetDisputesByCustomer(context.Background(), "ALFKI")

		require.NoError(t, err)
		assert.NotNil(t, disputes)
		assert.Empty(t, disputes)
	})
}
