package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Определение пользовательских ошибок
var (
	ErrActiveDisputeExists    = errors.New("активный спор по заказу уже существует")
	ErrDuplicateDisputeNumber = errors.New("номер спора уже занят")
)

// Имена ограничений уникальности из миграций: по ним различается,
// что именно нарушила вставка — номер спора или инвариант активного спора.
const (
	disputeNumberConstraint = "disputes_dispute_number_key"
	activeDisputeConstraint = "uniq_disputes_active_per_order_type"
)

// SQL-запросы для работы со спорами
const (
	InsertDisputeQuery = `
		INSERT INTO
			disputes (dispute_number, order_id, customer_id, dispute_type,
				status, description, reason, dispute_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING
			id, dispute_number, order_id, customer_id, dispute_type, status,
			description, reason, dispute_date, resolved_date, created_at, updated_at
	`
	CountActiveDisputesQuery = `
		SELECT
			count(*)
		FROM
			disputes
		WHERE
			order_id = $1
			AND dispute_type = $2
			AND status IN ('OPEN', 'IN_PROGRESS')
	`
	SelectDisputesByCustomerQuery = `
		SELECT
			id, dispute_number, order_id, customer_id, dispute_type, status,
			description, reason, dispute_date, resolved_date, created_at, updated_at
		FROM
			disputes
		WHERE
			customer_id = $1
		ORDER BY
			dispute_date DESC
	`
)

// DisputeDB представляет строку таблицы disputes.
type DisputeDB struct {
	ID            int64
	DisputeNumber string
	OrderID       int64
	CustomerID    string
	DisputeType   string
	Status        string
	Description   *string
	Reason        *string
	DisputeDate   time.Time
	ResolvedDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func scanDisputeRow(row interface {
	Scan(dest ...interface{}) error
}, dispute *DisputeDB) error {
	return row.Scan(
		&dispute.ID, &dispute.DisputeNumber, &dispute.OrderID, &dispute.CustomerID,
		&dispute.DisputeType, &dispute.Status, &dispute.Description, &dispute.Reason,
		&dispute.DisputeDate, &dispute.ResolvedDate, &dispute.CreatedAt, &dispute.UpdatedAt,
	)
}

// CreateDispute создает новый спор. Частичный уникальный индекс по
// (order_id, dispute_type) для активных статусов служит последним рубежом
// против гонки двух одновременных запросов: проигравший получает
// ErrActiveDisputeExists, а не молчаливый дубликат.
func (d *Database) CreateDispute(ctx context.Context, dispute DisputeDB) (*DisputeDB, error) {
	created := &DisputeDB{}

	row := d.db.QueryRow(ctx, InsertDisputeQuery,
		dispute.DisputeNumber, dispute.OrderID, dispute.CustomerID, dispute.DisputeType,
		dispute.Status, dispute.Description, dispute.Reason, dispute.DisputeDate,
	)
	if err := scanDisputeRow(row, created); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			switch e.ConstraintName {
			case activeDisputeConstraint:
				return nil, ErrActiveDisputeExists
			case disputeNumberConstraint:
				return nil, ErrDuplicateDisputeNumber
			}
			return nil, ErrActiveDisputeExists
		}
		return nil, fmt.Errorf("ошибка при создании спора: %w", err)
	}

	return created, nil
}

// CountActiveDisputes возвращает число споров указанного типа по заказу
// в статусах OPEN и IN_PROGRESS.
func (d *Database) CountActiveDisputes(ctx context.Context, orderID int64, disputeType string) (int64, error) {
	var count int64

	if err := d.db.QueryRow(ctx, CountActiveDisputesQuery, orderID, disputeType).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка при подсчете активных споров: %w", err)
	}

	return count, nil
}

// FindDisputesByCustomer возвращает все споры клиента от новых к старым.
func (d *Database) FindDisputesByCustomer(ctx context.Context, customerID string) ([]DisputeDB, error) {
	var result []DisputeDB

	rows, err := d.db.Query(ctx, SelectDisputesByCustomerQuery, customerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске споров: %w", err)
	}
	defer rows.Close()

	// Обрабатываем каждую строку результата
	for rows.Next() {
		var item DisputeDB
		if err := scanDisputeRow(rows, &item); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки спора: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк споров: %w", err)
	}

	return result, nil
}
