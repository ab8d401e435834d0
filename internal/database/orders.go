package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SQL-запросы для работы с заказами
const (
	SelectOrderQuery = `
		SELECT
			id, order_number, customer_id, total_amount, status,
			order_date, created_at, updated_at
		FROM
			orders
		WHERE
			id = $1
	`
	SelectOrdersByCustomerBetweenQuery = `
		SELECT
			id, order_number, customer_id, total_amount, status,
			order_date, created_at, updated_at
		FROM
			orders
		WHERE
			customer_id = $1
			AND order_date BETWEEN $2 AND $3
		ORDER BY
			order_date DESC
	`
	SelectOrdersByCustomerSinceQuery = `
		SELECT
			id, order_number, customer_id, total_amount, status,
			order_date, created_at, updated_at
		FROM
			orders
		WHERE
			customer_id = $1
			AND order_date >= $2
		ORDER BY
			order_date DESC
	`
	SelectOrdersByCustomerQuery = `
		SELECT
			id, order_number, customer_id, total_amount, status,
			order_date, created_at, updated_at
		FROM
			orders
		WHERE
			customer_id = $1
		ORDER BY
			order_date DESC
		LIMIT $2
	`
)

// OrderDB представляет строку таблицы orders.
type OrderDB struct {
	ID          int64
	OrderNumber string
	CustomerID  string
	TotalAmount decimal.Decimal
	Status      string
	OrderDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Database) findOrders(ctx context.Context, query string, args ...interface{}) ([]OrderDB, error) {
	var result []OrderDB

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске заказов: %w", err)
	}
	defer rows.Close()

	// Обрабатываем каждую строку результата
	for rows.Next() {
		var item OrderDB
		if err := rows.Scan(
			&item.ID, &item.OrderNumber, &item.CustomerID, &item.TotalAmount,
			&item.Status, &item.OrderDate, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки заказа: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк заказов: %w", err)
	}

	return result, nil
}

// FindOrder находит заказ по идентификатору. Если заказ не найден, возвращает nil без ошибки.
func (d *Database) FindOrder(ctx context.Context, orderID int64) (*OrderDB, error) {
	order := &OrderDB{}

	err := d.db.QueryRow(ctx, SelectOrderQuery, orderID).Scan(
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.TotalAmount,
		&order.Status, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при поиске заказа: %w", err)
	}

	return order, nil
}

// FindOrdersByCustomerBetween возвращает заказы клиента в диапазоне дат (включительно),
// от новых к старым.
func (d *Database) FindOrdersByCustomerBetween(ctx context.Context, customerID string, startDate, endDate time.Time) ([]OrderDB, error) {
	return d.findOrders(ctx, SelectOrdersByCustomerBetweenQuery, customerID, startDate, endDate)
}

// FindOrdersByCustomerSince возвращает заказы клиента начиная с указанной даты,
// от новых к старым.
func (d *Database) FindOrdersByCustomerSince(ctx context.Context, customerID string, startDate time.Time) ([]OrderDB, error) {
	return d.findOrders(ctx, SelectOrdersByCustomerSinceQuery, customerID, startDate)
}

// FindOrdersByCustomer возвращает не больше limit последних заказов клиента.
func (d *Database) FindOrdersByCustomer(ctx context.Context, customerID string, limit int) ([]OrderDB, error) {
	return d.findOrders(ctx, SelectOrdersByCustomerQuery, customerID, limit)
}
