package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renal37/go-customer-finance/internal/database"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerStorageStub подменяет хранилище клиентов в тестах.
// Неустановленные методы возвращают нулевые значения.
type customerStorageStub struct {
	createCustomer     func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error)
	findCustomer       func(ctx context.Context, customerID string) (*database.CustomerDB, error)
	customerExists     func(ctx context.Context, customerID string) (bool, error)
	findAll            func(ctx context.Context) ([]database.CustomerDB, error)
	findByCompanyName  func(ctx context.Context, companyName string) ([]database.CustomerDB, error)
	findByContactName  func(ctx context.Context, contactName string) ([]database.CustomerDB, error)
	findByContactEmail func(ctx context.Context, contactEmail string) ([]database.CustomerDB, error)
	findByPhone        func(ctx context.Context, phone string) ([]database.CustomerDB, error)
	updateCustomer     func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error)
	deleteCustomer     func(ctx context.Context, customerID string) error
}

func (s *customerStorageStub) CreateCustomer(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
	if s.createCustomer == nil {
		return nil, nil
	}
	return s.createCustomer(ctx, customer)
}

func (s *customerStorageStub) FindCustomer(ctx context.Context, customerID string) (*database.CustomerDB, error) {
	if s.findCustomer == nil {
		return nil, nil
	}
	return s.findCustomer(ctx, customerID)
}

func (s *customerStorageStub) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	if s.customerExists == nil {
		return false, nil
	}
	return s.customerExists(ctx, customerID)
}

func (s *customerStorageStub) FindAllCustomers(ctx context.Context) ([]database.CustomerDB, error) {
	if s.findAll == nil {
		return nil, nil
	}
	return s.findAll(ctx)
}

func (s *customerStorageStub) FindCustomersByCompanyName(ctx context.Context, companyName string) ([]database.CustomerDB, error) {
	if s.findByCompanyName == nil {
		return nil, nil
	}
	return s.findByCompanyName(ctx, companyName)
}

func (s *customerStorageStub) FindCustomersByContactName(ctx context.Context, contactName string) ([]database.CustomerDB, error) {
	if s.findByContactName == nil {
		return nil, nil
	}
	return s.findByContactName(ctx, contactName)
}

func (s *customerStorageStub) FindCustomersByContactEmail(ctx context.Context, contactEmail string) ([]database.CustomerDB, error) {
	if s.findByContactEmail == nil {
		return nil, nil
	}
	return s.findByContactEmail(ctx, contactEmail)
}

func (s *customerStorageStub) FindCustomersByPhone(ctx context.Context, phone string) ([]database.CustomerDB, error) {
	if s.findByPhone == nil {
		return nil, nil
	}
	return s.findByPhone(ctx, phone)
}

func (s *customerStorageStub) UpdateCustomer(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
	if s.updateCustomer == nil {
		return nil, nil
	}
	return s.updateCustomer(ctx, customer)
}

func (s *customerStorageStub) DeleteCustomer(ctx context.Context, customerID string) error {
	if s.deleteCustomer == nil {
		return nil
	}
	return s.deleteCustomer(ctx, customerID)
}

func TestCreateCustomer(t *testing.T) {
	createdAt := time.Date(2009, 11, 17, 0, 0, 0, 0, time.UTC)

	t.Run("Should create customer", func(t *testing.T) {
		var stored database.CustomerDB

		service := NewCustomerService(&customerStorageStub{
			customerExists: func(ctx context.Context, customerID string) (bool, error) {
				return false, nil
			},
			createCustomer: func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
				stored = customer
				customer.CreatedAt = createdAt
				customer.UpdatedAt = createdAt
				return &customer, nil
			},
		})

		contactName := "Maria Anders"

		customer, err := service.CreateCustomer(context.Background(), models.CustomerRequest{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
			ContactName: &contactName,
		})

		require.NoError(t, err)
		assert.Equal(t, "ALFKI", stored.CustomerID)
		assert.Equal(t, "ALFKI", customer.CustomerID)
		assert.Equal(t, "Alfreds Futterkiste", customer.CompanyName)
		assert.Equal(t, &contactName, customer.ContactName)
		assert.Nil(t, customer.ContactTitle)
		assert.Equal(t, createdAt, customer.CreatedAt.Time)
	})

	t.Run("Should return conflict when customer ID is taken", func(t *testing.T) {
		createCalled := false

		service := NewCustomerService(&customerStorageStub{
			customerExists: func(ctx context.Context, customerID string) (bool, error) {
				return true, nil
			},
			createCustomer: func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
				createCalled = true
				return &customer, nil
			},
		})

		customer, err := service.CreateCustomer(context.Background(), models.CustomerRequest{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
		})

		assert.ErrorIs(t, err, ErrDuplicateCustomerID)
		assert.Nil(t, customer)
		assert.False(t, createCalled)
	})

	t.Run("Should return conflict when insert loses the race", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			customerExists: func(ctx context.Context, customerID string) (bool, error) {
				return false, nil
			},
			createCustomer: func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
				return nil, database.ErrDuplicateCustomer
			},
		})

		customer, err := service.CreateCustomer(context.Background(), models.CustomerRequest{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
		})

		assert.ErrorIs(t, err, ErrDuplicateCustomerID)
		assert.Nil(t, customer)
	})

	t.Run("Should return all validation errors at once", func(t *testing.T) {
		storageTouched := false

		service := NewCustomerService(&customerStorageStub{
			customerExists: func(ctx context.Context, customerID string) (bool, error) {
				storageTouched = true
				return false, nil
			},
		})

		customer, err := service.CreateCustomer(context.Background(), models.CustomerRequest{
			CustomerID: "TOOLONG",
		})

		require.Error(t, err)
		assert.Nil(t, customer)
		assert.False(t, storageTouched)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 2)
		assert.Equal(t, "customerId", validationErr.Fields[0].Field)
		assert.Equal(t, "TOOLONG", validationErr.Fields[0].Rejected)
		assert.Equal(t, "customerId must be exactly 5 characters", validationErr.Fields[0].Message)
		assert.Equal(t, "companyName", validationErr.Fields[1].Field)
		assert.Equal(t, "companyName is required", validationErr.Fields[1].Message)
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("Should return not found when customer isn't exist", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{})

		customer, err := service.GetCustomer(context.Background(), "ZZZZZ")

		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.Nil(t, customer)
	})

	t.Run("Should return customer", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			findCustomer: func(ctx context.Context, customerID string) (*database.CustomerDB, error) {
				return &database.CustomerDB{CustomerID: customerID, CompanyName: "Alfreds Futterkiste"}, nil
			},
		})

		customer, err := service.GetCustomer(context.Background(), "ALFKI")

		require.NoError(t, err)
		assert.Equal(t, "ALFKI", customer.CustomerID)
		assert.Equal(t, "Alfreds Futterkiste", customer.CompanyName)
	})
}

func TestSearchCustomers(t *testing.T) {
	row := database.CustomerDB{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	t.Run("Should prefer company name over the other filters", func(t *testing.T) {
		otherCalled := false
		other := func(ctx context.Context, value string) ([]database.CustomerDB, error) {
			otherCalled = true
			return nil, nil
		}

		service := NewCustomerService(&customerStorageStub{
			findByCompanyName: func(ctx context.Context, companyName string) ([]database.CustomerDB, error) {
				assert.Equal(t, "Alfreds", companyName)
				return []database.CustomerDB{row}, nil
			},
			findByContactName:  other,
			findByContactEmail: other,
			findByPhone:        other,
		})

		customers, err := service.SearchCustomers(context.Background(), models.CustomerSearchFilter{
			CompanyName:  "Alfreds",
			ContactName:  "Maria",
			ContactEmail: "maria@example.com",
			Phone:        "030",
		})

		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "ALFKI", customers[0].CustomerID)
		assert.False(t, otherCalled)
	})

	t.Run("Should skip blank company name filter", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			findByContactName: func(ctx context.Context, contactName string) ([]database.CustomerDB, error) {
				assert.Equal(t, "Maria", contactName)
				return []database.CustomerDB{row}, nil
			},
		})

		customers, err := service.SearchCustomers(context.Background(), models.CustomerSearchFilter{
			CompanyName: "   ",
			ContactName: "Maria",
		})

		require.NoError(t, err)
		assert.Len(t, customers, 1)
	})

	t.Run("Should return all customers without filters", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			findAll: func(ctx context.Context) ([]database.CustomerDB, error) {
				return []database.CustomerDB{row, {CustomerID: "ANATR", CompanyName: "Ana Trujillo"}}, nil
			},
		})

		customers, err := service.SearchCustomers(context.Background(), models.CustomerSearchFilter{})

		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("Should return empty list when nothing matched", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			findByPhone: func(ctx context.Context, phone string) ([]database.CustomerDB, error) {
				return nil, nil
			},
		})

		customers, err := service.SearchCustomers(context.Background(), models.CustomerSearchFilter{Phone: "000"})

		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("Should return not found when customer isn't exist", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			updateCustomer: func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
				return nil, database.ErrCustomerNotFound
			},
		})

		customer, err := service.UpdateCustomer(context.Background(), "ZZZZZ", models.CustomerUpdateRequest{
			CompanyName: "New Name",
		})

		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.Nil(t, customer)
	})

	t.Run("Should replace attributes entirely", func(t *testing.T) {
		var stored database.CustomerDB

		service := NewCustomerService(&customerStorageStub{
			updateCustomer: func(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error) {
				stored = customer
				return &customer, nil
			},
		})

		customer, err := service.UpdateCustomer(context.Background(), "ALFKI", models.CustomerUpdateRequest{
			CompanyName: "Alfreds Futterkiste GmbH",
		})

		require.NoError(t, err)
		assert.Equal(t, "ALFKI", stored.CustomerID)
		assert.Equal(t, "Alfreds Futterkiste GmbH", stored.CompanyName)
		assert.Nil(t, stored.ContactName)
		assert.Equal(t, "Alfreds Futterkiste GmbH", customer.CompanyName)
	})

	t.Run("Should return validation error for missing company name", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{})

		customer, err := service.UpdateCustomer(context.Background(), "ALFKI", models.CustomerUpdateRequest{})

		require.Error(t, err)
		assert.Nil(t, customer)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "companyName", validationErr.Fields[0].Field)
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("Should return not found when customer isn't exist", func(t *testing.T) {
		service := NewCustomerService(&customerStorageStub{
			deleteCustomer: func(ctx context.Context, customerID string) error {
				return database.ErrCustomerNotFound
			},
		})

		err := service.DeleteCustomer(context.Background(), "ZZZZZ")

		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("Should delete customer", func(t *testing.T) {
		deletedID := ""

		service := NewCustomerService(&customerStorageStub{
			deleteCustomer: func(ctx context.Context, customerID string) error {
				deletedID = customerID
				return nil
			},
		})

		err := service.DeleteCustomer(context.Background(), "ALFKI")

		require.NoError(t, err)
		assert.Equal(t, "ALFKI", deletedID)
	})

	t.Run("Should pass storage error through", func(t *testing.T) {
		storageErr := errors.New("соединение потеряно")

		service := NewCustomerService(&customerStorageStub{
			deleteCustomer: func(ctx context.Context, customerID string) error {
				return storageErr
			},
		})

		err := service.DeleteCustomer(context.Background(), "ALFKI")

		assert.ErrorIs(t, err, storageErr)
	})
}
