package models

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_customer.go . CustomerService
type CustomerService interface {
	CreateCustomer(ctx context.Context, request CustomerRequest) (*Customer, error)

	GetCustomer(ctx context.Context, customerID string) (*Customer, error)

	SearchCustomers(ctx context.Context, filter CustomerSearchFilter) ([]Customer, error)

	UpdateCustomer(ctx context.Context, customerID string, request CustomerUpdateRequest) (*Customer, error)

	DeleteCustomer(ctx context.Context, customerID string) error
}

//go:generate mockgen -destination=mocks/mock_finance.go . FinanceService
type FinanceService interface {
	GetOrderHistory(ctx context.Context, request HistoryRequest) ([]Order, error)

	GetInvoiceHistory(ctx context.Context, request HistoryRequest) ([]Invoice, error)

	StartDuplicateChargeDispute(ctx context.Context, request DisputeRequest) (*Dispute, error)

	FindLostReceipt(ctx context.Context, request LostReceiptRequest) (*Receipt, error)

	GetDisputesByCustomer(ctx context.Context, customerID string) ([]Dispute, error)

	GetLostReceiptsByCustomer(ctx context.Context, customerID string) ([]Receipt, error)
}
