package router

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Renal37/go-customer-finance/internal/middlewares"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

// healthRequests считает обращения к проверке здоровья за время жизни процесса.
// Счетчик нигде не сохраняется и обнуляется при перезапуске.
var healthRequests atomic.Int64

// HealthResponse описывает тело ответа проверки здоровья.
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Count     int64             `json:"count"`
	Timestamp utils.RFC3339Date `json:"timestamp"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	middlewares.EncodeJSONResponse(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Service:   "Customer & Finance API",
		Count:     healthRequests.Add(1),
		Timestamp: utils.RFC3339Date{Time: time.Now()},
	})
}
