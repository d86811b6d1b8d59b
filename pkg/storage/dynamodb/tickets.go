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

// CreateTicket creates a new ticket record. Remaining quantity starts equal to
// the total quantity.
func (s *Store) CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	ticket.Id = uuid.New().String()
	ticket.RemainingQty = ticket.Quantity
	ticket.IsActive = true
	ticket.CreatedAt = time.Now()

	ticketAV, err := attributevalue.MarshalMap(ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TicketsTableName),
		Item:                ticketAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create ticket in DynamoDB: %w", err)
	}

	return ticket, nil
}

// GetTicket retrieves a ticket from DynamoDB by its ID.
func (s *Store) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": ticketID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TicketsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTicketNotFound
	}

	var ticket models.Ticket
	if err := attributevalue.UnmarshalMap(result.Item, &ticket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
	}

	return &ticket, nil
}

// ListActiveTickets retrieves all active tickets that still have inventory.
func (s *Store) ListActiveTickets(ctx context.Context) ([]models.Ticket, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.TicketsTableName),
		FilterExpression: aws.String("is_active = :active AND remaining_qty > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
			":zero":   &types.AttributeValueMemberN{Value: "0"},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tickets table: %w", err)
	}

	var tickets []models.Ticket
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tickets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tickets: %w", err)
	}

	return tickets, nil
}

// CheckAvailability verifies a ticket is sellable for the requested quantity.
// Advisory only: the race-safe check is the conditional decrement inside
// purchase confirmation.
func (s *Store) CheckAvailability(ctx context.Context, ticketID string, qty int64) (*models.Ticket, error) {
	ticket, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.IsActive {
		return nil, storage.ErrTicketInactive
	}

	if ticket.RemainingQty < qty {
		return nil, storage.ErrInsufficientInventory
	}

	return ticket, nil
}

// DecrementTicket atomically applies remaining_qty -= qty, conditioned on the
// remaining quantity still covering it at the moment of the write.
func (s *Store) DecrementTicket(ctx context.Context, ticketID string, qty int64) error {
	qtyAV := &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", qty)}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TicketsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ticketID},
		},
		UpdateExpression:    aws.String("SET remaining_qty = remaining_qty - :qty"),
		ConditionExpression: aws.String("attribute_exists(id) AND remaining_qty >= :qty"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": qtyAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrInsufficientInventory
		}
		return fmt.Errorf("failed to decrement ticket inventory: %w", err)
	}

	return nil
}

// DeactivateTicket marks a ticket unsellable. Tickets with pending purchases
// cannot be deactivated; the reservation has to resolve first.
func (s *Store) DeactivateTicket(ctx context.Context, ticketID string) error {
	pending, err := s.countPendingPurchases(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("failed to count pending purchases: %w", err)
	}
	if pending > 0 {
		return storage.ErrActiveReservationsExist
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TicketsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ticketID},
		},
		UpdateExpression:    aws.String("SET is_active = :inactive"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrTicketNotFound
		}
		return fmt.Errorf("failed to deactivate ticket: %w", err)
	}

	return nil
}

const ticketPurchasesGSI = "ticket_id-index"

func (s *Store) countPendingPurchases(ctx context.Context, ticketID string) (int32, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(ticketPurchasesGSI),
		KeyConditionExpression: aws.String("ticket_id = :ticket_id"),
		FilterExpression:       aws.String("#status = :pending"),
		Select:                 types.SelectCount,
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ticket_id": &types.AttributeValueMemberS{Value: ticketID},
			":pending":   &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to query purchases by ticket: %w", err)
	}

	return result.Count, nil
}
