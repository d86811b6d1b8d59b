package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hotspotpay/voucher-ledger/pkg/config"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	dydbstore "github.com/hotspotpay/voucher-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg := config.Load()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	if !cfg.TablesSet() {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store = dydbstore.New(dbClient, nil, dydbstore.Tables{
		Tickets:      cfg.TicketsTable,
		Purchases:    cfg.PurchasesTable,
		Transactions: cfg.TransactionsTable,
		Sellers:      cfg.SellersTable,
		Withdrawals:  cfg.WithdrawalsTable,
	})
}

// HandleRequest is triggered by an EventBridge Schedule. It sweeps pending
// purchases whose reservation deadline has passed and marks them EXPIRED.
// The transition is conditional, so a purchase that settles between the query
// and the update is left alone.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting expiry sweep for overdue reservations...")

	overdue, err := store.GetExpiredPendingPurchases(ctx, time.Now())
	if err != nil {
		log.Printf("ERROR: failed to get overdue reservations: %v", err)
		return err
	}

	if len(overdue) == 0 {
		log.Println("No overdue reservations found.")
		return nil
	}

	log.Printf("Found %d overdue reservations. Expiring them...", len(overdue))

	for _, purchase := range overdue {
		if err := store.ExpirePurchase(ctx, purchase.Id); err != nil {
			log.Printf("ERROR: failed to expire purchase %s: %v", purchase.Id, err)
			// Continue to the next purchase, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Expired purchase %s", purchase.Id)
	}

	log.Println("Expiry sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
