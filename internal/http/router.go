package router

import (
	"log"
	"net/http"

	"github.com/Renal37/go-customer-finance/internal/logger"
	"github.com/Renal37/go-customer-finance/internal/middlewares"
	"github.com/Renal37/go-customer-finance/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
}

type Router struct {
	config          Config
	customerService models.CustomerService
	financeService  models.FinanceService
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(
	config Config,
	customerService models.CustomerService,
	financeService models.FinanceService,
) *Router {
	return &Router{
		config:          config,
		customerService: customerService,
		financeService:  financeService,
	}
}

// get возвращает настроенный роутер.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.customerService,
			router.financeService,
		),
		logger.RequestLogger,
	)

	r.Get("/api/health", Health)

	r.Route("/api/customers", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.CustomerRequest]).Post("/", CreateCustomer)
		r.Get("/", SearchCustomers)
		r.Get("/{customerID}", GetCustomer)
		r.With(middlewares.JSONMiddleware[models.CustomerUpdateRequest]).Put("/{customerID}", UpdateCustomer)
		r.Delete("/{customerID}", DeleteCustomer)
	})

	r.Route("/api/finance", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.HistoryRequest]).Post("/orders/history", GetOrderHistory)
		r.With(middlewares.JSONMiddleware[models.HistoryRequest]).Post("/invoices/history", GetInvoiceHistory)
		r.With(middlewares.JSONMiddleware[models.DisputeRequest]).Post("/disputes/duplicate-charge", StartDuplicateChargeDispute)
		r.With(middlewares.JSONMiddleware[models.LostReceiptRequest]).Post("/receipts/find-lost", FindLostReceipt)
		r.Get("/disputes", GetDisputesByCustomer)
		r.Get("/receipts/lost", GetLostReceiptsByCustomer)
	})

	return r
}

// Run запускает HTTP-сервер.
func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
