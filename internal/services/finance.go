package services

import (
	"context"
	"time"

	"github.com/Renal37/go-customer-finance/internal/database"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// Лимит истории по умолчанию. Применяется только в ветке без фильтра по датам:
// выборки с датами намеренно не ограничиваются.
const defaultHistoryLimit = 50

// FinanceService предоставляет финансовые операции: проекции истории
// заказов и счетов и два защищенных рабочих процесса — открытие спора
// о двойном списании и розыск утерянной квитанции.
type FinanceService struct {
	storage financeStorage
}

// Интерфейс хранилища для финансовых операций
type financeStorage interface {
	FindOrder(ctx context.Context, orderID int64) (*database.OrderDB, error)
	FindOrdersByCustomerBetween(ctx context.Context, customerID string, startDate, endDate time.Time) ([]database.OrderDB, error)
	FindOrdersByCustomerSince(ctx context.Context, customerID string, startDate time.Time) ([]database.OrderDB, error)
	FindOrdersByCustomer(ctx context.Context, customerID string, limit int) ([]database.OrderDB, error)

	FindInvoicesByCustomerBetween(ctx context.Context, customerID string, startDate, endDate time.Time) ([]database.InvoiceDB, error)
	FindInvoicesByCustomerSince(ctx context.Context, customerID string, startDate time.Time) ([]database.InvoiceDB, error)
	FindInvoicesByCustomer(ctx context.Context, customerID string, limit int) ([]database.InvoiceDB, error)

	CreateDispute(ctx context.Context, dispute database.DisputeDB) (*database.DisputeDB, error)
	CountActiveDisputes(ctx context.Context, orderID int64, disputeType string) (int64, error)
	FindDisputesByCustomer(ctx context.Context, customerID string) ([]database.DisputeDB, error)

	CreateReceipt(ctx context.Context, receipt database.ReceiptDB) (*database.ReceiptDB, error)
	FindLostReceiptsByOrder(ctx context.Context, orderID int64) ([]database.ReceiptDB, error)
	FindLostReceiptsByCustomer(ctx context.Context, customerID string) ([]database.ReceiptDB, error)
}

// NewFinanceService создает новый экземпляр FinanceService
func NewFinanceService(storage financeStorage) *FinanceService {
	return &FinanceService{storage: storage}
}

// GetOrderHistory возвращает историю заказов клиента от новых к старым.
// Если заданы обе даты — заказы в диапазоне включительно; если только
// начальная — заказы с этой даты; без дат — последние limit заказов.
func (f *FinanceService) GetOrderHistory(ctx context.Context, request models.HistoryRequest) ([]models.Order, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	var (
		orders []database.OrderDB
		err    error
	)

	switch {
	case request.StartDate != nil && request.EndDate != nil:
		orders, err = f.storage.FindOrdersByCustomerBetween(ctx, request.CustomerID, request.StartDate.Time, request.EndDate.Time)
	case request.StartDate != nil:
		orders, err = f.storage.FindOrdersByCustomerSince(ctx, request.CustomerID, request.StartDate.Time)
	default:
		orders, err = f.storage.FindOrdersByCustomer(ctx, request.CustomerID, historyLimit(request.Limit))
	}
	if err != nil {
		return nil, err
	}

	result := make([]models.Order, len(orders))
	for i, order := range orders {
		result[i] = *toOrder(&order)
	}

	return result, nil
}

// GetInvoiceHistory возвращает историю счетов клиента от новых к старым.
// Семантика веток совпадает с GetOrderHistory с точностью до даты счета.
func (f *FinanceService) GetInvoiceHistory(ctx context.Context, request models.HistoryRequest) ([]models.Invoice, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	var (
		invoices []database.InvoiceDB
		err      error
	)

	switch {
	case request.StartDate != nil && request.EndDate != nil:
		invoices, err = f.storage.FindInvoicesByCustomerBetween(ctx, request.CustomerID, request.StartDate.Time, request.EndDate.Time)
	case request.StartDate != nil:
		invoices, err = f.storage.FindInvoicesByCustomerSince(ctx, request.CustomerID, request.StartDate.Time)
	default:
		invoices, err = f.storage.FindInvoicesByCustomer(ctx, request.CustomerID, historyLimit(request.Limit))
	}
	if err != nil {
		return nil, err
	}

	result := make([]models.Invoice, len(invoices))
	for i, invoice := range invoices {
		result[i] = *toInvoice(&invoice)
	}

	return result, nil
}

func historyLimit(limit *int) int {
	if limit == nil {
		return defaultHistoryLimit
	}
	return *limit
}

// toOrder преобразует строку базы данных в модель.
func toOrder(order *database.OrderDB) *models.Order {
	return &models.Order{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Status:      models.OrderStatus(order.Status),
		OrderDate:   utils.RFC3339Date{Time: order.OrderDate},
		CreatedAt:   utils.RFC3339Date{Time: order.CreatedAt},
		UpdatedAt:   utils.RFC3339Date{Time: order.UpdatedAt},
	}
}

// toInvoice преобразует строку базы данных в модель.
func toInvoice(invoice *database.InvoiceDB) *models.Invoice {
	return &models.Invoice{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		OrderID:       invoice.OrderID,
		CustomerID:    invoice.CustomerID,
		Amount:        invoice.Amount,
		Status:        models.InvoiceStatus(invoice.Status),
		InvoiceDate:   utils.RFC3339Date{Time: invoice.InvoiceDate},
		DueDate:       toOptionalDate(invoice.DueDate),
		PaidDate:      toOptionalDate(invoice.PaidDate),
		CreatedAt:     utils.RFC3339Date{Time: invoice.CreatedAt},
		UpdatedAt:     utils.RFC3339Date{Time: invoice.UpdatedAt},
	}
}

func toOptionalDate(date *time.Time) *utils.RFC3339Date {
	if date == nil {
		return nil
	}
	return &utils.RFC3339Date{Time: *date}
}
