package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	"github.com/hotspotpay/voucher-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		ticket := &models.Ticket{SellerId: "seller1", Name: "1 Hour Pass", Price: 500, Quantity: 100, DurationMinutes: 60}
		result, err := store.CreateTicket(context.Background(), ticket)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Id)
		assert.True(t, result.IsActive)
		assert.Equal(t, int64(100), result.RemainingQty)
		mockClient.AssertExpectations(t)
	})
}

func TestListActiveTickets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		ticketAV, _ := attributevalue.MarshalMap(&models.Ticket{Id: "ticket1", IsActive: true, RemainingQty: 5})
		mockClient.On("Scan", mock.Anything, mock.Anything).Once().Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{ticketAV}}, nil)

		tickets, err := store.ListActiveTickets(context.Background())

		assert.NoError(t, err)
		assert.Len(t, tickets, 1)
		mockClient.AssertExpectations(t)
	})
}

func TestDecrementTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.DecrementTicket(context.Background(), "ticket1", 2)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Guard Rejects Oversell", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		err := store.DecrementTicket(context.Background(), "ticket1", 99)

		assert.ErrorIs(t, err, storage.ErrInsufficientInventory)
		mockClient.AssertExpectations(t)
	})
}

func TestDeactivateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets", PurchasesTableName: "purchases"}

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Count: 0}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.DeactivateTicket(context.Background(), "ticket1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Pending Purchases Block Deactivation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets", PurchasesTableName: "purchases"}

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Count: 2}, nil)

		err := store.DeactivateTicket(context.Background(), "ticket1")

		assert.ErrorIs(t, err, storage.ErrActiveReservationsExist)
		mockClient.AssertExpectations(t)
	})

	t.Run("Ticket Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets", PurchasesTableName: "purchases"}

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Count: 0}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		err := store.DeactivateTicket(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrTicketNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestGetPurchaseByTicketCode(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		purchase := &models.Purchase{Id: "purchase1", TicketCode: "A1B2C3D4", Status: models.PurchaseCompleted}
		purchaseAV, _ := attributevalue.MarshalMap(purchase)
		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{purchaseAV}}, nil)

		result, err := store.GetPurchaseByTicketCode(context.Background(), "A1B2C3D4")

		assert.NoError(t, err)
		assert.Equal(t, "purchase1", result.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{}, nil)

		_, err := store.GetPurchaseByTicketCode(context.Background(), "ZZZZ0000")

		assert.ErrorIs(t, err, storage.ErrPurchaseNotFound)
		mockClient.AssertExpectations(t)
	})
}
