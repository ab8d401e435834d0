package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/go-customer-finance/internal/middlewares"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/Renal37/go-customer-finance/internal/services"
)

// FinanceResponse описывает конверт ответа финансовых операций.
type FinanceResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Count   *int        `json:"count,omitempty"`
}

func financeSuccess(message string, data interface{}, count int) FinanceResponse {
	return FinanceResponse{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	}
}

func GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.HistoryRequest](w, r)
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	orders, err := (*financeService).GetOrderHistory(r.Context(), request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting order history: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK,
		financeSuccess("Order history retrieved successfully", orders, len(orders)))
}

func GetInvoiceHistory(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.HistoryRequest](w, r)
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	invoices, err := (*financeService).GetInvoiceHistory(r.Context(), request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting invoice history: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK,
		financeSuccess("Invoice history retrieved successfully", invoices, len(invoices)))
}

func StartDuplicateChargeDispute(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.DisputeRequest](w, r)
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	dispute, err := (*financeService).StartDuplicateChargeDispute(r.Context(), request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, fmt.Sprintf("Order not found with ID: %d", request.OrderID), http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrOrderOwnership) {
			http.Error(w, fmt.Sprintf("Order does not belong to customer: %s", request.CustomerID), http.StatusForbidden)
			return
		}

		if errors.Is(err, services.ErrActiveDisputeExists) {
			http.Error(w, fmt.Sprintf("Duplicate charge dispute already exists for order: %d", request.OrderID), http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during starting dispute: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, FinanceResponse{
		Success: true,
		Message: "Dispute started successfully",
		Data:    dispute,
	})
}

func FindLostReceipt(w http.ResponseWriter, r *http.Request) {
	request := middlewares.GetParsedJSONData[models.LostReceiptRequest](w, r)
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	receipt, err := (*financeService).FindLostReceipt(r.Context(), request)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}

		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, fmt.Sprintf("Order not found with ID: %d", request.OrderID), http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrOrderOwnership) {
			http.Error(w, fmt.Sprintf("Order does not belong to customer: %s", request.CustomerID), http.StatusForbidden)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during finding lost receipt: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, FinanceResponse{
		Success: true,
		Message: "Lost receipt processed successfully",
		Data:    receipt,
	})
}

func GetDisputesByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")

	if customerID == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	disputes, err := (*financeService).GetDisputesByCustomer(r.Context(), customerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting disputes: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK,
		financeSuccess("Disputes retrieved successfully", disputes, len(disputes)))
}

func GetLostReceiptsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")

	if customerID == "" {
		http.Error(w, "Customer ID is required", http.StatusBadRequest)
		return
	}

	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	receipts, err := (*financeService).GetLostReceiptsByCustomer(r.Context(), customerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting lost receipts: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK,
		financeSuccess("Lost receipts retrieved successfully", receipts, len(receipts)))
}
