package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hotspotpay/voucher-ledger/pkg/config"
	"github.com/hotspotpay/voucher-ledger/pkg/scheduler"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	dydbstore "github.com/hotspotpay/voucher-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize dependencies once.
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	if !cfg.TablesSet() {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// The settlement worker never enqueues, so it needs no scheduler.
	dbClient := dynamodb.NewFromConfig(awsCfg)
	store = dydbstore.New(dbClient, nil, dydbstore.Tables{
		Tickets:      cfg.TicketsTable,
		Purchases:    cfg.PurchasesTable,
		Transactions: cfg.TransactionsTable,
		Sellers:      cfg.SellersTable,
		Withdrawals:  cfg.WithdrawalsTable,
	})
}

// HandleRequest processes settlement jobs enqueued by the payment webhook and
// confirms the purchases. Confirmation is idempotent, so SQS redelivery of an
// already-settled job is harmless.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var job scheduler.SettlementJob
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil {
			log.Printf("ERROR: failed to unmarshal settlement job from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Attempting to settle purchase %s (transaction %s)", job.PurchaseID, job.TransactionID)

		_, settled, err := store.ConfirmPurchase(ctx, job.PurchaseID)
		if err != nil {
			// A cancelled or expired purchase can never settle, so retrying
			// the message would loop forever. Log and drop it.
			if errors.Is(err, storage.ErrInvalidState) {
				log.Printf("WARN: purchase %s can no longer settle: %v", job.PurchaseID, err)
				continue
			}
			log.Printf("ERROR: failed to settle purchase %s: %v", job.PurchaseID, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		if settled {
			log.Printf("Successfully settled purchase %s", job.PurchaseID)
		} else {
			log.Printf("Purchase %s was already settled", job.PurchaseID)
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
