package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Renal37/go-customer-finance/internal/database"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// Определяем ошибки, связанные с клиентами
var (
	ErrCustomerNotFound    = errors.New("клиент не найден")
	ErrDuplicateCustomerID = errors.New("клиент с таким кодом уже существует")
)

// CustomerService предоставляет операции справочника клиентов.
type CustomerService struct {
	storage customerStorage
}

// Интерфейс хранилища для работы с клиентами
type customerStorage interface {
	CreateCustomer(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error)
	FindCustomer(ctx context.Context, customerID string) (*database.CustomerDB, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	FindAllCustomers(ctx context.Context) ([]database.CustomerDB, error)
	FindCustomersByCompanyName(ctx context.Context, companyName string) ([]database.CustomerDB, error)
	FindCustomersByContactName(ctx context.Context, contactName string) ([]database.CustomerDB, error)
	FindCustomersByContactEmail(ctx context.Context, contactEmail string) ([]database.CustomerDB, error)
	FindCustomersByPhone(ctx context.Context, phone string) ([]database.CustomerDB, error)
	UpdateCustomer(ctx context.Context, customer database.CustomerDB) (*database.CustomerDB, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// NewCustomerService создает новый экземпляр CustomerService
func NewCustomerService(storage customerStorage) *CustomerService {
	return &CustomerService{storage: storage}
}

// CreateCustomer создает нового клиента. Код клиента проверяется на занятость
// до записи, а нарушение уникальности при самой записи также возвращается
// как конфликт: две проверки не атомарны между собой, и гонка не должна
// превращаться ни в перезапись, ни в неожиданную ошибку.
func (c *CustomerService) CreateCustomer(ctx context.Context, request models.CustomerRequest) (*models.Customer, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	exists, err := c.storage.CustomerExists(ctx, request.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке кода клиента: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCustomerID
	}

	created, err := c.storage.CreateCustomer(ctx, database.CustomerDB{
		CustomerID:   request.CustomerID,
		CompanyName:  request.CompanyName,
		ContactName:  request.ContactName,
		ContactTitle: request.ContactTitle,
		Address:      request.Address,
		City:         request.City,
		Region:       request.Region,
		PostalCode:   request.PostalCode,
		Country:      request.Country,
		Phone:        request.Phone,
		Fax:          request.Fax,
		ContactEmail: request.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateCustomer) {
			return nil, ErrDuplicateCustomerID
		}
		return nil, err
	}

	return toCustomer(created), nil
}

// GetCustomer возвращает клиента по коду.
func (c *CustomerService) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	customer, err := c.storage.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return toCustomer(customer), nil
}

// SearchCustomers ищет клиентов по одному фильтру в фиксированном порядке
// приоритета: companyName > contactName > contactEmail > phone.
// Остальные фильтры игнорируются. Без фильтров возвращаются все клиенты;
// пустой результат — это пустой список, а не ошибка.
func (c *CustomerService) SearchCustomers(ctx context.Context, filter models.CustomerSearchFilter) ([]models.Customer, error) {
	var (
		customers []database.CustomerDB
		err       error
	)

	switch {
	case strings.TrimSpace(filter.CompanyName) != "":
		customers, err = c.storage.FindCustomersByCompanyName(ctx, filter.CompanyName)
	case strings.TrimSpace(filter.ContactName) != "":
		customers, err = c.storage.FindCustomersByContactName(ctx, filter.ContactName)
	case strings.TrimSpace(filter.ContactEmail) != "":
		customers, err = c.storage.FindCustomersByContactEmail(ctx, filter.ContactEmail)
	case strings.TrimSpace(filter.Phone) != "":
		customers, err = c.storage.FindCustomersByPhone(ctx, filter.Phone)
	default:
		customers, err = c.storage.FindAllCustomers(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]models.Customer, len(customers))
	for i, customer := range customers {
		result[i] = *toCustomer(&customer)
	}

	return result, nil
}

// UpdateCustomer полностью заменяет изменяемые атрибуты клиента:
// поля, отсутствующие в запросе, обнуляются, updated_at обновляется.
func (c *CustomerService) UpdateCustomer(ctx context.Context, customerID string, request models.CustomerUpdateRequest) (*models.Customer, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	updated, err := c.storage.UpdateCustomer(ctx, database.CustomerDB{
		CustomerID:   customerID,
		CompanyName:  request.CompanyName,
		ContactName:  request.ContactName,
		ContactTitle: request.ContactTitle,
		Address:      request.Address,
		City:         request.City,
		Region:       request.Region,
		PostalCode:   request.PostalCode,
		Country:      request.Country,
		Phone:        request.Phone,
		Fax:          request.Fax,
		ContactEmail: request.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, database.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return toCustomer(updated), nil
}

// DeleteCustomer безвозвратно удаляет клиента по коду.
func (c *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := c.storage.DeleteCustomer(ctx, customerID); err != nil {
		if errors.Is(err, database.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	return nil
}

// toCustomer преобразует строку базы данных в модель.
func toCustomer(customer *database.CustomerDB) *models.Customer {
	return &models.Customer{
		CustomerID:   customer.CustomerID,
		CompanyName:  customer.CompanyName,
		ContactName:  customer.ContactName,
		ContactTitle: customer.ContactTitle,
		Address:      customer.Address,
		City:         customer.City,
		Region:       customer.Region,
		PostalCode:   customer.PostalCode,
		Country:      customer.Country,
		Phone:        customer.Phone,
		Fax:          customer.Fax,
		ContactEmail: customer.ContactEmail,
		CreatedAt:    utils.RFC3339Date{Time: customer.CreatedAt},
		UpdatedAt:    utils.RFC3339Date{Time: customer.UpdatedAt},
	}
}
