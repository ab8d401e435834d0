package models

import (
	"github.com/Renal37/go-customer-finance/internal/utils"
)

type ReceiptStatus string

const (
	ReceiptStatusPending     ReceiptStatus = "PENDING"
	ReceiptStatusFound       ReceiptStatus = "FOUND"
	ReceiptStatusLost        ReceiptStatus = "LOST"
	ReceiptStatusRegenerated ReceiptStatus = "REGENERATED"
	ReceiptStatusCancelled   ReceiptStatus = "CANCELLED"
)

// Receipt представляет квитанцию по заказу. Сам файл квитанции не хранится,
// учитываются только его метаданные.
type Receipt struct {
	ID            int64             `json:"id"`
	ReceiptNumber string            `json:"receiptNumber"`
	OrderID       int64             `json:"orderId"`
	CustomerID    string            `json:"customerId"`
	Status        ReceiptStatus     `json:"status"`
	FilePath      *string           `json:"filePath"`
	FileName      *string           `json:"fileName"`
	FileSize      *int64            `json:"fileSize"`
	MimeType      *string           `json:"mimeType"`
	ReceiptDate   utils.RFC3339Date `json:"receiptDate"`
	CreatedAt     utils.RFC3339Date `json:"createdAt"`
	UpdatedAt     utils.RFC3339Date `json:"updatedAt"`
}

// LostReceiptRequest содержит данные запроса на розыск утерянной квитанции.
// Повторный запрос по тому же заказу возвращает уже созданную запись.
type LostReceiptRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	OrderID    int64  `json:"orderId" validate:"required,gt=0"`
}
