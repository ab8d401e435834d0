package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Определение пользовательских ошибок
var (
	ErrDuplicateCustomer = errors.New("клиент уже существует")
	ErrCustomerNotFound  = errors.New("клиент не найден")
)

// SQL-запросы для работы с клиентами
const (
	InsertCustomerQuery = `
		INSERT INTO
			customers (customer_id, company_name, contact_name, contact_title,
				address, city, region, postal_code, country, phone, fax, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
	`
	SelectCustomerQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		WHERE
			customer_id = $1
	`
	CustomerExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE customer_id = $1
		)
	`
	SelectAllCustomersQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		ORDER BY
			customer_id
	`
	SelectCustomersByCompanyNameQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		WHERE
			company_name ILIKE '%' || $1 || '%'
		ORDER BY
			customer_id
	`
	SelectCustomersByContactNameQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		WHERE
			contact_name ILIKE '%' || $1 || '%'
		ORDER BY
			customer_id
	`
	SelectCustomersByContactEmailQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		WHERE
			contact_email ILIKE '%' || $1 || '%'
		ORDER BY
			customer_id
	`
	SelectCustomersByPhoneQuery = `
		SELECT
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
		FROM
			customers
		WHERE
			phone LIKE '%' || $1 || '%'
		ORDER BY
			customer_id
	`
	UpdateCustomerQuery = `
		UPDATE
			customers
		SET
			company_name = $2,
			contact_name = $3,
			contact_title = $4,
			address = $5,
			city = $6,
			region = $7,
			postal_code = $8,
			country = $9,
			phone = $10,
			fax = $11,
			contact_email = $12,
			updated_at = now()
		WHERE
			customer_id = $1
		RETURNING
			customer_id, company_name, contact_name, contact_title,
			address, city, region, postal_code, country, phone, fax, contact_email,
			created_at, updated_at
	`
	DeleteCustomerQuery = `
		DELETE FROM
			customers
		WHERE
			customer_id = $1
	`
)

// CustomerDB представляет строку таблицы customers.
type CustomerDB struct {
	CustomerID   string
	CompanyName  string
	ContactName  *string
	ContactTitle *string
	Address      *string
	City         *string
	Region       *string
	PostalCode   *string
	Country      *string
	Phone        *string
	Fax          *string
	ContactEmail *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func scanCustomerRow(row pgx.Row) (*CustomerDB, error) {
	customer := &CustomerDB{}

	err := row.Scan(
		&customer.CustomerID, &customer.CompanyName, &customer.ContactName, &customer.ContactTitle,
		&customer.Address, &customer.City, &customer.Region, &customer.PostalCode,
		&customer.Country, &customer.Phone, &customer.Fax, &customer.ContactEmail,
		&customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// CreateCustomer создает нового клиента. Нарушение уникальности кода клиента
// возвращается как ErrDuplicateCustomer: проверка существования и вставка
// не атомарны между собой, поэтому гонка должна проявляться как конфликт.
func (d *Database) CreateCustomer(ctx context.Context, customer CustomerDB) (*CustomerDB, error) {
	row := d.db.QueryRow(ctx, InsertCustomerQuery,
		customer.CustomerID, customer.CompanyName, customer.ContactName, customer.ContactTitle,
		customer.Address, customer.City, customer.Region, customer.PostalCode,
		customer.Country, customer.Phone, customer.Fax, customer.ContactEmail,
	)

	created, err := scanCustomerRow(row)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateCustomer
		}
		return nil, fmt.Errorf("ошибка при создании клиента: %w", err)
	}

	return created, nil
}

// FindCustomer находит клиента по коду. Если клиент не найден, возвращает nil без ошибки.
func (d *Database) FindCustomer(ctx context.Context, customerID string) (*CustomerDB, error) {
	customer, err := scanCustomerRow(d.db.QueryRow(ctx, SelectCustomerQuery, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при поиске клиента: %w", err)
	}

	return customer, nil
}

// CustomerExists проверяет существование клиента с указанным кодом.
func (d *Database) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	var exists bool

	if err := d.db.QueryRow(ctx, CustomerExistsQuery, customerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка при проверке существования клиента: %w", err)
	}

	return exists, nil
}

func (d *Database) findCustomers(ctx context.Context, query string, args ...interface{}) ([]CustomerDB, error) {
	var result []CustomerDB

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске клиентов: %w", err)
	}
	defer rows.Close()

	// Обрабатываем каждую строку результата
	for rows.Next() {
		item, err := scanCustomerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки клиента: %w", err)
		}
		result = append(result, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка после чтения строк клиентов: %w", err)
	}

	return result, nil
}

// FindAllCustomers возвращает всех клиентов.
func (d *Database) FindAllCustomers(ctx context.Context) ([]CustomerDB, error) {
	return d.findCustomers(ctx, SelectAllCustomersQuery)
}

// FindCustomersByCompanyName ищет клиентов по подстроке названия компании без учета регистра.
func (d *Database) FindCustomersByCompanyName(ctx context.Context, companyName string) ([]CustomerDB, error) {
	return d.findCustomers(ctx, SelectCustomersByCompanyNameQuery, companyName)
}

// FindCustomersByContactName ищет клиентов по подстроке имени контакта без учета регистра.
func (d *Database) FindCustomersByContactName(ctx context.Context, contactName string) ([]CustomerDB, error) {
	return d.findCustomers(ctx, SelectCustomersByContactNameQuery, contactName)
}

// FindCustomersByContactEmail ищет клиентов по подстроке почты контакта без учета регистра.
func (d *Database) FindCustomersByContactEmail(ctx context.Context, contactEmail string) ([]CustomerDB, error) {
	return d.findCustomers(ctx, SelectCustomersByContactEmailQuery, contactEmail)
}

// FindCustomersByPhone ищет клиентов по подстроке телефона с учетом регистра.
func (d *Database) FindCustomersByPhone(ctx context.Context, phone string) ([]CustomerDB, error) {
	return d.findCustomers(ctx, SelectCustomersByPhoneQuery, phone)
}

// UpdateCustomer полностью заменяет изменяемые атрибуты клиента и обновляет updated_at.
// Если клиента нет, возвращает ErrCustomerNotFound.
func (d *Database) UpdateCustomer(ctx context.Context, customer CustomerDB) (*CustomerDB, error) {
	row := d.db.QueryRow(ctx, UpdateCustomerQuery,
		customer.CustomerID, customer.CompanyName, customer.ContactName, customer.ContactTitle,
		customer.Address, customer.City, customer.Region, customer.PostalCode,
		customer.Country, customer.Phone, customer.Fax, customer.ContactEmail,
	)

	updated, err := scanCustomerRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("ошибка при обновлении клиента: %w", err)
	}

	return updated, nil
}

// DeleteCustomer безвозвратно удаляет клиента по коду.
// Если клиента нет, возвращает ErrCustomerNotFound.
func (d *Database) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := d.db.Exec(ctx, DeleteCustomerQuery, customerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении клиента: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
