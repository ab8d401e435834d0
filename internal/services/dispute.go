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

// Определяем ошибки, связанные со спорами и квитанциями
var (
	ErrOrderNotFound       = errors.New("заказ не найден")
	ErrOrderOwnership      = errors.New("заказ не принадлежит клиенту")
	ErrActiveDisputeExists = errors.New("спор о двойном списании по заказу уже открыт")
)

// Число попыток генерации номера документа при коллизии.
const numberAttempts = 3

// StartDuplicateChargeDispute открывает спор о двойном списании.
// Предусловия проверяются по порядку, побеждает первый отказ:
// заказ существует; заказ принадлежит клиенту; активного спора этого типа
// по заказу нет. Затем создается спор со сгенерированным номером,
// типом DUPLICATE_CHARGE и статусом OPEN.
func (f *FinanceService) StartDuplicateChargeDispute(ctx context.Context, request models.DisputeRequest) (*models.Dispute, error) {
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

	activeDisputes, err := f.storage.CountActiveDisputes(ctx, request.OrderID, string(models.DisputeTypeDuplicateCharge))
	if err != nil {
		return nil, err
	}
	if activeDisputes > 0 {
		return nil, ErrActiveDisputeExists
	}

	for attempt := 0; attempt < numberAttempts; attempt++ {
		created, err := f.storage.CreateDispute(ctx, database.DisputeDB{
			DisputeNumber: newDocumentNumber(disputeNumberPrefix),
			OrderID:       request.OrderID,
			CustomerID:    request.CustomerID,
			DisputeType:   string(models.DisputeTypeDuplicateCharge),
			Status:        string(models.DisputeStatusOpen),
			Description:   &request.Description,
			Reason:        request.Reason,
			DisputeDate:   time.Now(),
		})
		if err != nil {
			// Коллизия сгенерированного номера — пробуем другой номер
			if errors.Is(err, database.ErrDuplicateDisputeNumber) {
				continue
			}

			// Конкурирующий запрос успел создать активный спор первым
			if errors.Is(err, database.ErrActiveDisputeExists) {
				return nil, ErrActiveDisputeExists
			}

			return nil, err
		}

		return toDispute(created), nil
	}

	return nil, fmt.Errorf("не удалось подобрать уникальный номер спора за %d попыток", numberAttempts)
}

// GetDisputesByCustomer возвращает все споры клиента от новых к старым.
func (f *FinanceService) GetDisputesByCustomer(ctx context.Context, customerID string) ([]models.Dispute, error) {
	disputes, err := f.storage.FindDisputesByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Dispute, len(disputes))
	for i, dispute := range disputes {
		result[i] = *toDispute(&dispute)
	}

	return result, nil
}

// toDispute преобразует строку базы данных в модель.
func toDispute(dispute *database.DisputeDB) *models.Dispute {
	var description string
	if dispute.Description != nil {
		description = *dispute.Description
	}

	return &models.Dispute{
		ID:            dispute.ID,
		DisputeNumber: dispute.DisputeNumber,
		OrderID:       dispute.OrderID,
		CustomerID:    dispute.CustomerID,
		DisputeType:   models.DisputeType(dispute.DisputeType),
		Status:        models.DisputeStatus(dispute.Status),
		Description:   description,
		Reason:        dispute.Reason,
		DisputeDate:   utils.RFC3339Date{Time: dispute.DisputeDate},
		ResolvedDate:  toOptionalDate(dispute.ResolvedDate),
		CreatedAt:     utils.RFC3339Date{Time: dispute.CreatedAt},
		UpdatedAt:     utils.RFC3339Date{Time: dispute.UpdatedAt},
	}
}
