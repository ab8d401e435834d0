package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/go-customer-finance/internal/middlewares"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/services"
	"github.com/go-chi/chi/v5"
)

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.CustomerRequest](w, r)
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	customer, err := (*customerService).CreateCustomer(r.Context(), request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		if errors.Is(err, services.ErrDuplicateCustomerID) {
			http.Error(w, fmt.Sprintf("Customer with ID %s already exists", request.CustomerID), http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during creating customer: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, customer)
}

func GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	customer, err := (*customerService).GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			http.Error(w, fmt.Sprintf("Customer with ID %s not found", customerID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting customer: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, customer)
}

func SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	filter := models.CustomerSearchFilter{
		CompanyName:  r.URL.Query().Get("companyName"),
		ContactName:  r.URL.Query().Get("contactName"),
		ContactEmail: r.URL.Query().Get("contactEmail"),
		Phone:        r.URL.Query().Get("phone"),
	}

	customers, err := (*customerService).SearchCustomers(r.Context(), filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during searching customers: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, customers)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	request := middlewares.GetParsedJSONData[models.CustomerUpdateRequest](w, r)
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	customer, err := (*customerService).UpdateCustomer(r.Context(), customerID, request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		if errors.Is(err, services.ErrCustomerNotFound) {
			http.Error(w, fmt.Sprintf("Customer with ID %s not found", customerID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during updating customer: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, customer)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	customerService := middlewares.GetServiceFromContext[models.CustomerService](w, r, middlewares.CustomerServiceKey)

	if err := (*customerService).DeleteCustomer(r.Context(), customerID); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			http.Error(w, fmt.Sprintf("Customer with ID %s not found", customerID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during deleting customer: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
