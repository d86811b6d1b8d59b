package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

// GetSellerProfile retrieves a seller profile from DynamoDB by its ID.
func (s *Store) GetSellerProfile(ctx context.Context, sellerID string) (*models.SellerProfile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": sellerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seller ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.SellersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller profile from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrSellerNotFound
	}

	var profile models.SellerProfile
	if err := attributevalue.UnmarshalMap(result.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seller profile: %w", err)
	}

	return &profile, nil
}

// CreateSellerProfile creates a new seller profile with a zero balance and an
// initial version for optimistic locking.
func (s *Store) CreateSellerProfile(ctx context.Context, profile *models.SellerProfile) (*models.SellerProfile, error) {
	if profile.Id == "" {
		profile.Id = uuid.New().String()
	}
	profile.Balance = 0
	profile.TotalSales = 0
	profile.TotalWithdrawn = 0
	profile.Version = 1
	profile.CreatedAt = time.Now()

	profileAV, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seller profile: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.SellersTableName),
		Item:                profileAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("seller profile %s already exists", profile.Id)
		}
		return nil, fmt.Errorf("failed to create seller profile in DynamoDB: %w", err)
	}

	return profile, nil
}
