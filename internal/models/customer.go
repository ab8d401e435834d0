package models

import (
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// Customer представляет карточку клиента.
// Идентификатором служит пятисимвольный код, задаваемый при создании.
type Customer struct {
	CustomerID   string            `json:"customerId"`
	CompanyName  string            `json:"companyName"`
	ContactName  *string           `json:"contactName"`
	ContactTitle *string           `json:"contactTitle"`
	Address      *string           `json:"address"`
	City         *string           `json:"city"`
	Region       *string           `json:"region"`
	PostalCode   *string           `json:"postalCode"`
	Country      *string           `json:"country"`
	Phone        *string           `json:"phone"`
	Fax          *string           `json:"fax"`
	ContactEmail *string           `json:"contactEmail"`
	CreatedAt    utils.RFC3339Date `json:"createdAt"`
	UpdatedAt    utils.RFC3339Date `json:"updatedAt"`
}

// CustomerRequest содержит данные для создания нового клиента.
type CustomerRequest struct {
	CustomerID   string  `json:"customerId" validate:"required,len=5"`
	CompanyName  string  `json:"companyName" validate:"required,max=40"`
	ContactName  *string `json:"contactName" validate:"omitempty,max=30"`
	ContactTitle *string `json:"contactTitle" validate:"omitempty,max=30"`
	Address      *string `json:"address" validate:"omitempty,max=60"`
	City         *string `json:"city" validate:"omitempty,max=15"`
	Region       *string `json:"region" validate:"omitempty,max=15"`
	PostalCode   *string `json:"postalCode" validate:"omitempty,max=10"`
	Country      *string `json:"country" validate:"omitempty,max=15"`
	Phone        *string `json:"phone" validate:"omitempty,max=24"`
	Fax          *string `json:"fax" validate:"omitempty,max=24"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=255"`
}

// CustomerUpdateRequest содержит данные для полной замены атрибутов клиента.
// Идентификатор передается отдельно и не меняется; незаполненные поля
// обнуляют соответствующие атрибуты.
type CustomerUpdateRequest struct {
	CompanyName  string  `json:"companyName" validate:"required,max=40"`
	ContactName  *string `json:"contactName" validate:"omitempty,max=30"`
	ContactTitle *string `json:"contactTitle" validate:"omitempty,max=30"`
	Address      *string `json:"address" validate:"omitempty,max=60"`
	City         *string `json:"city" validate:"omitempty,max=15"`
	Region       *string `json:"region" validate:"omitempty,max=15"`
	PostalCode   *string `json:"postalCode" validate:"omitempty,max=10"`
	Country      *string `json:"country" validate:"omitempty,max=15"`
	Phone        *string `json:"phone" validate:"omitempty,max=24"`
	Fax          *string `json:"fax" validate:"omitempty,max=24"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=255"`
}

// CustomerSearchFilter задает параметры поиска клиентов.
// Учитывается только один фильтр в порядке приоритета:
// companyName > contactName > contactEmail > phone.
type CustomerSearchFilter struct {
	CompanyName  string
	ContactName  string
	ContactEmail string
	Phone        string
}
