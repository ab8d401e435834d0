package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SQL-запросы для работы со счетами
const (
	SelectInvoicesByCustomerBetweenQuery = `
		SELECT
			id, invoice_number, order_id, customer_id, amount, status,
			invoice_date, due_date, paid_date, created_at, updated_at
		FROM
			invoices
		WHERE
			customer_id = $1
			AND invoice_date BETWEEN $2 AND $3
		ORDER BY
			invoice_date DESC
	`
	SelectInvoicesByCustomerSinceQuery = `
		SELECT
			id, invoice_number, order_id, customer_id, amount, status,
			invoice_date, due_date, paid_date, created_at, updated_at
		FROM
			invoices
		WHERE
			customer_id = $1
			AND invoice_date >= $2
		ORDER BY
			invoice_date DESC
	`
	SelectInvoicesByCustomerQuery = `
		SELECT
			id, invoice_number, order_id, customer_id, amount, status,
			invoice_date, due_date, paid_date, created_at, updated_at
		FROM
			invoices
		WHERE
			customer_id = $1
		ORDER BY
			invoice_date DESC
		LIMIT $2
	`
)

// InvoiceDB представляет строку таблицы invoices.
type InvoiceDB struct {
	ID            int64
	InvoiceNumber string
	OrderID       int64
	CustomerID    string
	Amount        decimal.Decimal
	Status        string
	InvoiceDate   time.Time
	DueDate       *time.Time
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d *Database) findInvoices(ctx context.Context, query string, args ...interface{}) ([]InvoiceDB, error) {
	var result []InvoiceDB

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске счетов: %w", err)
	}
	defer rows.Close()

	// Обрабатываем каждую строку результата
	for rows.Next() {
		var item InvoiceDB
		if err := rows.Scan(
			&item.ID, &item.InvoiceNumber, &item.OrderID, &item.CustomerID,
			&item.Amount, &item.Status, &item.InvoiceDate, &item.DueDate,
			&item.PaidDate, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки счета: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк счетов: %w", err)
	}

	return result, nil
}

// FindInvoicesByCustomerBetween возвращает счета клиента в диапазоне дат (включительно),
// от новых к старым.
func (d *Database) FindInvoicesByCustomerBetween(ctx context.Context, customerID string, startDate, endDate time.Time) ([]InvoiceDB, error) {
	return d.findInvoices(ctx, SelectInvoicesByCustomerBetweenQuery, customerID, startDate, endDate)
}

// FindInvoicesByCustomerSince возвращает счета клиента начиная с указанной даты,
// от новых к старым.
func (d *Database) FindInvoicesByCustomerSince(ctx context.Context, customerID string, startDate time.Time) ([]InvoiceDB, error) {
	return d.findInvoices(ctx, SelectInvoicesByCustomerSinceQuery, customerID, startDate)
}

// FindInvoicesByCustomer возвращает не больше limit последних счетов клиента.
func (d *Database) FindInvoicesByCustomer(ctx context.Context, customerID string, limit int) ([]InvoiceDB, error) {
	return d.findInvoices(ctx, SelectInvoicesByCustomerQuery, customerID, limit)
}
