package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

const (
	purchaseUserGSI   = "user_id-index"
	purchaseStatusGSI = "status-expires_at-index"
)

// ListPurchasesByUserID retrieves a user's purchases, newest first. A
// non-empty status narrows the result.
func (s *Store) ListPurchasesByUserID(ctx context.Context, userID string, status models.PurchaseStatus) ([]models.Purchase, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(purchaseUserGSI),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false), // Sort by creation time in descending order
	}

	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases by user: %w", err)
	}

	var purchases []models.Purchase
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &purchases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchases: %w", err)
	}

	return purchases, nil
}

// GetExpiredPendingPurchases retrieves pending purchases whose reservation
// deadline passed before the cutoff. Used by the expiry sweep, which is the
// only writer of the EXPIRED state.
func (s *Store) GetExpiredPendingPurchases(ctx context.Context, cutoff time.Time) ([]models.Purchase, error) {
	cutoffStr, err := cutoff.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(purchaseStatusGSI),
		KeyConditionExpression: aws.String("#status = :pending AND expires_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
			":cutoff":  &types.AttributeValueMemberS{Value: string(cutoffStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for expired purchases: %w", err)
	}

	var purchases []models.Purchase
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &purchases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expired purchases: %w", err)
	}

	return purchases, nil
}
