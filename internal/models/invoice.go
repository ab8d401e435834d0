package models

import (
	"github.com/Renal37/go-customer-finance/internal/utils"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded  InvoiceStatus = "REFUNDED"
)

// Invoice представляет счет, выставленный по заказу. Только для чтения.
type Invoice struct {
	ID            int64              `json:"id"`
	InvoiceNumber string             `json:"invoiceNumber"`
	OrderID       int64              `json:"orderId"`
	CustomerID    string             `json:"customerId"`
	Amount        decimal.Decimal    `json:"amount"`
	Status        InvoiceStatus      `json:"status"`
	InvoiceDate   utils.RFC3339Date  `json:"invoiceDate"`
	DueDate       *utils.RFC3339Date `json:"dueDate"`
	PaidDate      *utils.RFC3339Date `json:"paidDate"`
	CreatedAt     utils.RFC3339Date  `json:"createdAt"`
	UpdatedAt     utils.RFC3339Date  `json:"updatedAt"`
}
