package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hotspotpay/voucher-ledger/pkg/config"
	"github.com/hotspotpay/voucher-ledger/pkg/handlers"
	"github.com/hotspotpay/voucher-ledger/pkg/middleware"
	"github.com/hotspotpay/voucher-ledger/pkg/payments"
	"github.com/hotspotpay/voucher-ledger/pkg/scheduler"
	dydbstore "github.com/hotspotpay/voucher-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	if !cfg.TablesSet() {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	if cfg.SettlementQueueURL == "" {
		log.Fatal("SQS_SETTLEMENT_QUEUE_URL environment variable not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(awsCfg)
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, cfg.SettlementQueueURL)

	// Create our storage implementation
	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, sqsScheduler, dydbstore.Tables{
		Tickets:      cfg.TicketsTable,
		Purchases:    cfg.PurchasesTable,
		Transactions: cfg.TransactionsTable,
		Sellers:      cfg.SellersTable,
		Withdrawals:  cfg.WithdrawalsTable,
	})

	// Payment providers. Outside development each provider gets a real
	// client; the sandbox accepts everything and waits for a hand-driven
	// webhook.
	providers := payments.NewRegistry()
	if cfg.Environment == "development" {
		for _, p := range []payments.Provider{
			payments.MTNMobileMoney, payments.MoovMoney, payments.OrangeMoney, payments.BankTransfer,
		} {
			providers.Register(payments.NewSandboxProvider(p))
		}
	}
	if providers.Empty() {
		log.Fatalf("no payment providers registered for environment %q", cfg.Environment)
	}

	// Create our handler
	handler := handlers.NewApiHandler(store, cfg, providers)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	handler.Routes(router)
	router.Handle("/metrics", promhttp.Handler())

	logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)

	// Start the server
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
