package models

import (
	"github.com/Renal37/go-customer-finance/internal/utils"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// Order представляет заказ клиента. Заказы создаются внешней системой,
// здесь они доступны только для чтения.
type Order struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	CustomerID  string            `json:"customerId"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Status      OrderStatus       `json:"status"`
	OrderDate   utils.RFC3339Date `json:"orderDate"`
	CreatedAt   utils.RFC3339Date `json:"createdAt"`
	UpdatedAt   utils.RFC3339Date `json:"updatedAt"`
}

// HistoryRequest задает параметры выборки истории заказов или счетов.
// Лимит применяется только при отсутствии фильтра по датам;
// по умолчанию он равен 50.
type HistoryRequest struct {
	CustomerID string             `json:"customerId" validate:"required"`
	StartDate  *utils.RFC3339Date `json:"startDate"`
	EndDate    *utils.RFC3339Date `json:"endDate"`
	Limit      *int               `json:"limit" validate:"omitempty,min=1"`
}
