package dynamodb

import (
	"context"
	"errors"
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

func TestCancelPurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.CancelPurchase(context.Background(), "purchase1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Completed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		completed := &models.Purchase{Id: "purchase1", Status: models.PurchaseCompleted}
		completedAV, _ := attributevalue.MarshalMap(completed)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: completedAV}, nil)

		err := store.CancelPurchase(context.Background(), "purchase1")

		assert.ErrorIs(t, err, storage.ErrInvalidState)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{}, nil)

		err := store.CancelPurchase(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrPurchaseNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, errors.New("update failed"))

		err := store.CancelPurchase(context.Background(), "purchase1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to cancel purchase")
		mockClient.AssertExpectations(t)
	})
}

func TestExpirePurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.ExpirePurchase(context.Background(), "purchase1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Resolved Is A No-Op", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, PurchasesTableName: "purchases"}

		// A concurrent sweep or confirmation moved the purchase first.
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		err := store.ExpirePurchase(context.Background(), "purchase1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
