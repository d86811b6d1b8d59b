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
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

// CancelPurchase transitions a pending purchase to CANCELLED. Nothing is
// reversed: inventory and balance are only touched at confirmation.
func (s *Store) CancelPurchase(ctx context.Context, purchaseID string) error {
	if err := s.transitionPurchase(ctx, purchaseID, models.PurchasePending, models.PurchaseCancelled); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			purchase, getErr := s.GetPurchase(ctx, purchaseID)
			if getErr != nil {
				return getErr
			}
			return fmt.Errorf("%w: cannot cancel %s purchase", storage.ErrInvalidState, purchase.Status)
		}
		return fmt.Errorf("failed to cancel purchase: %w", err)
	}

	return nil
}

// ExpirePurchase conditionally transitions a pending purchase to EXPIRED.
// Losing the condition means another sweep or a confirmation got there first;
// either way there is nothing left to do.
func (s *Store) ExpirePurchase(ctx context.Context, purchaseID string) error {
	if err := s.transitionPurchase(ctx, purchaseID, models.PurchasePending, models.PurchaseExpired); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil
		}
		return fmt.Errorf("failed to expire purchase: %w", err)
	}

	return nil
}

// transitionPurchase performs a conditional status update from one state to
// another in a single round trip.
func (s *Store) transitionPurchase(ctx context.Context, purchaseID string, from, to models.PurchaseStatus) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PurchasesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: purchaseID},
		},
		UpdateExpression:    aws.String("SET #status = :to, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":now":  nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	return err
}
