package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/go-customer-finance/internal/models"
)

type key int

const (
	CustomerServiceKey key = iota
	FinanceServiceKey
)

// ServiceInjectorMiddleware кладет сервисы в контекст запроса,
// чтобы обработчики могли получить их без глобальных переменных.
func ServiceInjectorMiddleware(
	customerService models.CustomerService,
	financeService models.FinanceService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), CustomerServiceKey, customerService)
			ctx = context.WithValue(ctx, FinanceServiceKey, financeService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext извлекает сервис из контекста запроса по ключу.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
