package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/go-customer-finance/internal/database"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// FindLostReceipt регистрирует утерянную квитанцию по заказу.
// Операция идемпотентна: если утерянная квитанция по заказу уже есть,
// возвращается самая свежая из существующих и новая запись не создается.
func (f *FinanceService) FindLostReceipt(ctx context.Context, request models.LostReceiptRequest) (*models.Receipt, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	order, err := f.storage.FindOrder(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.CustomerID != request.CustomerID {
		return nil, ErrOrderOwnership
	}

	existing, err := f.storage.FindLostReceiptsByOrder(ctx, request.OrderID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return toReceipt(&existing[0]), nil
	}

	for attempt := 0; attempt < numberAttempts; attempt++ {
		created, err := f.storage.CreateReceipt(ctx, database.ReceiptDB{
			ReceiptNumber: newDocumentNumber(receiptNumberPrefix),
			OrderID:       request.OrderID,
			CustomerID:    request.CustomerID,
			Status:        string(models.ReceiptStatusLost),
			ReceiptDate:   time.Now(),
		})
		if err != nil {
			// Коллизия сгенерированного номера — пробуем другой номер
			if errors.Is(err, database.ErrDuplicateReceiptNumber) {
				continue
			}

			// Конкурирующий запрос успел зарегистрировать квитанцию первым:
			// перечитываем и возвращаем его результат
			if errors.Is(err, database.ErrLostReceiptExists) {
				return f.findExistingLostReceipt(ctx, request.OrderID)
			}

			return nil, err
		}

		return toReceipt(created), nil
	}

	return nil, fmt.Errorf("не удалось подобрать уникальный номер квитанции за %d попыток", numberAttempts)
}

func (f *FinanceService) findExistingLostReceipt(ctx context.Context, orderID int64) (*models.Receipt, error) {
	existing, err := f.storage.FindLostReceiptsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("утерянная квитанция по заказу %d не найдена после конфликта вставки", orderID)
	}

	return toReceipt(&existing[0]), nil
}

// GetLostReceiptsByCustomer возвращает утерянные квитанции клиента от новых к старым.
func (f *FinanceService) GetLostReceiptsByCustomer(ctx context.Context, customerID string) ([]models.Receipt, error) {
	receipts, err := f.storage.FindLostReceiptsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Receipt, len(receipts))
	for i, receipt := range receipts {
		result[i] = *toReceipt(&receipt)
	}

	return result, nil
}

// toReceipt преобразует строку базы данных в модель.
func toReceipt(receipt *database.ReceiptDB) *models.Receipt {
	return &models.Receipt{
		ID:            receipt.ID,
		ReceiptNumber: receipt.ReceiptNumber,
		OrderID:       receipt.OrderID,
		CustomerID:    receipt.CustomerID,
		Status:        models.ReceiptStatus(receipt.Status),
		FilePath:      receipt.FilePath,
		FileName:      receipt.FileName,
		FileSize:      receipt.FileSize,
		MimeType:      receipt.MimeType,
		ReceiptDate:   utils.RFC3339Date{Time: receipt.ReceiptDate},
		CreatedAt:     utils.RFC3339Date{Time: receipt.CreatedAt},
		UpdatedAt:     utils.RFC3339Date{Time: receipt.UpdatedAt},
	}
}
