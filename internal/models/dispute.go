package models

import (
	"github.com/Renal37/go-customer-finance/internal/utils"
)

type DisputeType string

const (
	DisputeTypeDuplicateCharge    DisputeType = "DUPLICATE_CHARGE"
	DisputeTypeUnauthorizedCharge DisputeType = "UNAUTHORIZED_CHARGE"
	DisputeTypeProductNotReceived DisputeType = "PRODUCT_NOT_RECEIVED"
	DisputeTypeDefectiveProduct   DisputeType = "DEFECTIVE_PRODUCT"
	DisputeTypeBillingError       DisputeType = "BILLING_ERROR"
)

type DisputeStatus string

const (
	DisputeStatusOpen       DisputeStatus = "OPEN"
	DisputeStatusInProgress DisputeStatus = "IN_PROGRESS"
	DisputeStatusResolved   DisputeStatus = "RESOLVED"
	DisputeStatusClosed     DisputeStatus = "CLOSED"
	DisputeStatusCancelled  DisputeStatus = "CANCELLED"
)

// Dispute представляет спор по заказу. Для пары (заказ, тип спора)
// допускается не больше одного спора в статусе OPEN или IN_PROGRESS.
type Dispute struct {
	ID            int64              `json:"id"`
	DisputeNumber string             `json:"disputeNumber"`
	OrderID       int64              `json:"orderId"`
	CustomerID    string             `json:"customerId"`
	DisputeType   DisputeType        `json:"disputeType"`
	Status        DisputeStatus      `json:"status"`
	Description   string             `json:"description"`
	Reason        *string            `json:"reason"`
	DisputeDate   utils.RFC3339Date  `json:"disputeDate"`
	ResolvedDate  *utils.RFC3339Date `json:"resolvedDate"`
	CreatedAt     utils.RFC3339Date  `json:"createdAt"`
	UpdatedAt     utils.RFC3339Date  `json:"updatedAt"`
}

// DisputeRequest содержит данные для открытия спора о двойном списании.
type DisputeRequest struct {
	CustomerID  string  `json:"customerId" validate:"required"`
	OrderID     int64   `json:"orderId" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Reason      *string `json:"reason"`
}
