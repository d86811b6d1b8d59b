package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

// GetPurchase retrieves a purchase from DynamoDB by its ID.
func (s *Store) GetPurchase(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": purchaseID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PurchasesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrPurchaseNotFound
	}

	var purchase models.Purchase
	if err := attributevalue.UnmarshalMap(result.Item, &purchase); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchase: %w", err)
	}

	return &purchase, nil
}

const ticketCodeGSI = "ticket_code-index"

// GetPurchaseByTicketCode retrieves the completed purchase carrying the given
// access code. Codes are only written at confirmation, so filtering on
// COMPLETED also keeps half-settled states invisible to verification.
func (s *Store) GetPurchaseByTicketCode(ctx context.Context, code string) (*models.Purchase, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(ticketCodeGSI),
		KeyConditionExpression: aws.String("ticket_code = :code"),
		FilterExpression:       aws.String("#status = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code":      &types.AttributeValueMemberS{Value: code},
			":completed": &types.AttributeValueMemberS{Value: string(models.PurchaseCompleted)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase by ticket code: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrPurchaseNotFound
	}

	var purchase models.Purchase
	if err := attributevalue.UnmarshalMap(result.Items[0], &purchase); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchase: %w", err)
	}

	return &purchase, nil
}
