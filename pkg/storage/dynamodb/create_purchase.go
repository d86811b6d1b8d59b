package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// reservationHold is how long a pending purchase keeps its slot before the
// expiry sweep may transition it to EXPIRED.
const reservationHold = 24 * time.Hour

// CreatePurchase checks availability, snapshots the ticket price and creates a
// PENDING purchase with a 24h reservation deadline. Inventory is not held at
// this point: the authoritative decrement happens inside ConfirmPurchase, so
// two purchases racing for the last unit both create fine and the second
// confirmation fails.
func (s *Store) CreatePurchase(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	ticket, err := s.CheckAvailability(ctx, p.TicketId, p.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.Id = uuid.New().String()
	p.UnitPrice = ticket.Price
	p.TotalAmount = ticket.Price * p.Quantity
	p.Status = models.PurchasePending
	p.ExpiresAt = now.Add(reservationHold)
	p.CreatedAt = now
	p.UpdatedAt = now

	slog.Log(ctx, slog.LevelDebug, "creating purchase", "purchase", p)

	purchaseAV, err := attributevalue.MarshalMap(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.PurchasesTableName),
		Item:                purchaseAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create purchase in DynamoDB: %w", err)
	}

	return p, nil
}
