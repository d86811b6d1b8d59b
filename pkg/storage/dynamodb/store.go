package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hotspotpay/voucher-ledger/pkg/scheduler"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store. It
// exists so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB. Every mutation
// that touches shared numeric state (ticket inventory, seller balances) goes
// through conditional expressions so that lost updates are structurally
// impossible, regardless of how many service instances run.
type Store struct {
	Client                DynamoDBAPI
	Scheduler             scheduler.Scheduler
	TicketsTableName      string
	PurchasesTableName    string
	TransactionsTableName string
	SellersTableName      string
	WithdrawalsTableName  string
}

// Tables groups the table names the store operates on.
type Tables struct {
	Tickets      string
	Purchases    string
	Transactions string
	Sellers      string
	Withdrawals  string
}

// New creates a new Store. The scheduler may be nil for workers that settle
// synchronously and never enqueue.
func New(client DynamoDBAPI, sched scheduler.Scheduler, tables Tables) *Store {
	return &Store{
		Client:                client,
		Scheduler:             sched,
		TicketsTableName:      tables.Tickets,
		PurchasesTableName:    tables.Purchases,
		TransactionsTableName: tables.Transactions,
		SellersTableName:      tables.Sellers,
		WithdrawalsTableName:  tables.Withdrawals,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
