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
	ErrLostReceiptExists      = errors.New("утерянная квитанция по заказу уже зарегистрирована")
	ErrDuplicateReceiptNumber = errors.New("номер квитанции уже занят")
)

// Имена ограничений уникальности из миграций.
const (
	receiptNumberConstraint = "receipts_receipt_number_key"
	lostReceiptConstraint   = "uniq_receipts_lost_per_order"
)

// SQL-запросы для работы с квитанциями
const (
	InsertReceiptQuery = `
		INSERT INTO
			receipts (receipt_number, order_id, customer_id, status, receipt_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
			id, receipt_number, order_id, customer_id, status,
			file_path, file_name, file_size, mime_type,
			receipt_date, created_at, updated_at
	`
	SelectLostReceiptsByOrderQuery = `
		SELECT
			id, receipt_number, order_id, customer_id, status,
			file_path, file_name, file_size, mime_type,
			receipt_date, created_at, updated_at
		FROM
			receipts
		WHERE
			order_id = $1
			AND status = 'LOST'
		ORDER BY
			receipt_date DESC
	`
	SelectLostReceiptsByCustomerQuery = `
		SELECT
			id, receipt_number, order_id, customer_id, status,
			file_path, file_name, file_size, mime_type,
			receipt_date, created_at, updated_at
		FROM
			receipts
		WHERE
			customer_id = $1
			AND status = 'LOST'
		ORDER BY
			receipt_date DESC
	`
)

// ReceiptDB представляет строку таблицы receipts.
type ReceiptDB struct {
	ID            int64
	ReceiptNumber string
	OrderID       int64
	CustomerID    string
	Status        string
	FilePath      *string
	FileName      *string
	FileSize      *int64
	MimeType      *string
	ReceiptDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func scanReceiptRow(row interface {
	Scan(dest ...interface{}) error
}, receipt *ReceiptDB) error {
	return row.Scan(
		&receipt.ID, &receipt.ReceiptNumber, &receipt.OrderID, &receipt.CustomerID,
		&receipt.Status, &receipt.FilePath, &receipt.FileName, &receipt.FileSize,
		&receipt.MimeType, &receipt.ReceiptDate, &receipt.CreatedAt, &receipt.UpdatedAt,
	)
}

// CreateReceipt создает новую квитанцию. Частичный уникальный индекс
// по order_id для статуса LOST гарантирует, что гонка двух запросов
// на розыск не породит две записи: проигравший получает ErrLostReceiptExists
// и перечитывает уже созданную запись.
func (d *Database) CreateReceipt(ctx context.Context, receipt ReceiptDB) (*ReceiptDB, error) {
	created := &ReceiptDB{}

	row := d.db.QueryRow(ctx, InsertReceiptQuery,
		receipt.ReceiptNumber, receipt.OrderID, receipt.CustomerID,
		receipt.Status, receipt.ReceiptDate,
	)
	if err := scanReceiptRow(row, created); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			switch e.ConstraintName {
			case lostReceiptConstraint:
				return nil, ErrLostReceiptExists
			case receiptNumberConstraint:
				return nil, ErrDuplicateReceiptNumber
			}
			return nil, ErrLostReceiptExists
		}
		return nil, fmt.Errorf("ошибка при создании квитанции: %w", err)
	}

	return created, nil
}

func (d *Database) findReceipts(ctx context.Context, query string, args ...interface{}) ([]ReceiptDB, error) {
	var result []ReceiptDB

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске квитанций: %w", err)
	}
	defer rows.Close()

	// Обрабатываем каждую строку результата
	for rows.Next() {
		var item ReceiptDB
		if err := scanReceiptRow(rows, &item); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки квитанции: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк квитанций: %w", err)
	}

	return result, nil
}

// FindLostReceiptsByOrder возвращает утерянные квитанции по заказу от новых к старым.
func (d *Database) FindLostReceiptsByOrder(ctx context.Context, orderID int64) ([]ReceiptDB, error) {
	return d.findReceipts(ctx, SelectLostReceiptsByOrderQuery, orderID)
}

// FindLostReceiptsByCustomer возвращает утерянные квитанции клиента от новых к старым.
func (d *Database) FindLostReceiptsByCustomer(ctx context.Context, customerID string) ([]ReceiptDB, error) {
	return d.findReceipts(ctx, SelectLostReceiptsByCustomerQuery, customerID)
}
