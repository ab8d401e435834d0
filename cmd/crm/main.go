package main

import (
	"context"
	"log"

	"github.com/Renal37/go-customer-finance/internal/database"
	router "github.com/Renal37/go-customer-finance/internal/http"
	"github.com/Renal37/go-customer-finance/internal/logger"
	"github.com/Renal37/go-customer-finance/internal/services"
	"github.com/Renal37/go-customer-finance/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)

	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	log.Printf("Running server on %s\n", config.endpoint)

	utils.HandleTerminationProcess(func() {
		db.Close()
	})

	router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewCustomerService(db),
		services.NewFinanceService(db),
	).Run()
}
