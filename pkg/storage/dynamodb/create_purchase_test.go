package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	"github.com/hotspotpay/voucher-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePurchase(t *testing.T) {
	ticket := &models.Ticket{Id: "ticket1", SellerId: "seller1", Price: 500, Quantity: 10, RemainingQty: 10, DurationMinutes: 60, IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets", PurchasesTableName: "purchases"}

		ticketAV, _ := attributevalue.MarshalMap(ticket)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: ticketAV}, nil)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		p := &models.Purchase{UserId: "user1", TicketId: "ticket1", Quantity: 3, PaymentMethod: "MTN_MOBILE_MONEY"}
		result, err := store.CreatePurchase(context.Background(), p)

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Id)
		assert.Equal(t, models.PurchasePending, result.Status)
		// Price is snapshotted at creation, never recomputed.
		assert.Equal(t, int64(500), result.UnitPrice)
		assert.Equal(t, int64(1500), result.TotalAmount)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresAt, 5*time.Second)
		mockClient.AssertExpectations(t)
	})

	t.Run("Ticket Inactive", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		inactive := *ticket
		inactive.IsActive = false
		inactiveAV, _ := attributevalue.MarshalMap(&inactive)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: inactiveAV}, nil)

		p := &models.Purchase{UserId: "user1", TicketId: "ticket1", Quantity: 1}
		_, err := store.CreatePurchase(context.Background(), p)

		assert.ErrorIs(t, err, storage.ErrTicketInactive)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Inventory", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		low := *ticket
		low.RemainingQty = 2
		lowAV, _ := attributevalue.MarshalMap(&low)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: lowAV}, nil)

		p := &models.Purchase{UserId: "user1", TicketId: "ticket1", Quantity: 3}
		_, err := store.CreatePurchase(context.Background(), p)

		assert.ErrorIs(t, err, storage.ErrInsufficientInventory)
		mockClient.AssertExpectations(t)
	})

	t.Run("Ticket Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TicketsTableName: "tickets"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{}, nil)

		p := &models.Purchase{UserId: "user1", TicketId: "missing", Quantity: 1}
		_, err := store.CreatePurchase(context.Background(), p)

		assert.ErrorIs(t, err, storage.ErrTicketNotFound)
		mockClient.AssertExpectations(t)
	})
}
