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
	"github.com/hotspotpay/voucher-ledger/pkg/settlement"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	"github.com/hotspotpay/voucher-ledger/pkg/ticketcode"
)

// maxCodeAttempts bounds the re-draw loop for ticket code collisions.
const maxCodeAttempts = 5

// ConfirmPurchase settles a pending purchase: marks it COMPLETED with a fresh
// access code, decrements ticket inventory and credits the seller's balance
// net of commission. The three writes commit or fail together in one
// TransactWriteItems call; each carries its own condition so that concurrent
// confirmations serialize and only the first succeeds.
//
// An already-completed purchase is an idempotent no-op. The commission rate is
// read from the seller's current profile at settlement time, not frozen at
// ticket or purchase creation.
func (s *Store) ConfirmPurchase(ctx context.Context, purchaseID string) (*models.Purchase, bool, error) {
	purchase, err := s.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, false, err
	}

	switch purchase.Status {
	case models.PurchaseCompleted:
		// Already settled, nothing to do.
		return purchase, false, nil
	case models.PurchaseCancelled, models.PurchaseExpired:
		return nil, false, fmt.Errorf("%w: cannot confirm %s purchase", storage.ErrInvalidState, purchase.Status)
	}

	ticket, err := s.GetTicket(ctx, purchase.TicketId)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get ticket for settlement: %w", err)
	}

	seller, err := s.GetSellerProfile(ctx, ticket.SellerId)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get seller profile for settlement: %w", err)
	}

	netCredit, err := settlement.Net(purchase.TotalAmount, seller.CommissionRate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to compute net credit: %w", err)
	}

	code, err := s.uniqueTicketCode(ctx)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	accessExpiry := now.Add(time.Duration(ticket.DurationMinutes) * time.Minute)

	expiryAV, err := attributevalue.Marshal(accessExpiry)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal access expiry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Complete the purchase. The status condition is
				// what serializes concurrent confirmations of the same purchase.
				Update: &types.Update{
					TableName: aws.String(s.PurchasesTableName),
					Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: purchase.Id}},
					UpdateExpression:    aws.String("SET #status = :completed, ticket_code = :code, expires_at = :expiry, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.PurchaseCompleted)},
						":pending":   &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
						":code":      &types.AttributeValueMemberS{Value: code},
						":expiry":    expiryAV,
						":now":       nowAV,
					},
				},
			},
			{
				// Operation 2: Decrement ticket inventory. The remaining_qty
				// guard makes overselling structurally impossible.
				Update: &types.Update{
					TableName: aws.String(s.TicketsTableName),
					Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ticket.Id}},
					UpdateExpression:    aws.String("SET remaining_qty = remaining_qty - :qty"),
					ConditionExpression: aws.String("remaining_qty >= :qty"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":qty": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", purchase.Quantity)},
					},
				},
			},
			{
				// Operation 3: Credit the seller's balance net of commission.
				Update: &types.Update{
					TableName: aws.String(s.SellersTableName),
					Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: seller.Id}},
					UpdateExpression:    aws.String("SET balance = balance + :net, total_sales = total_sales + :total, version = version + :inc"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":net":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", netCredit)},
						":total":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", purchase.TotalAmount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", seller.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) == len(input.TransactItems) {
			return s.confirmCancellation(ctx, purchaseID, tce)
		}
		return nil, false, fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	purchase.Status = models.PurchaseCompleted
	purchase.TicketCode = code
	purchase.ExpiresAt = accessExpiry
	purchase.UpdatedAt = now

	return purchase, true, nil
}

// confirmCancellation maps a cancelled settlement transaction to a domain
// outcome based on which operation's condition failed.
func (s *Store) confirmCancellation(ctx context.Context, purchaseID string, tce *types.TransactionCanceledException) (*models.Purchase, bool, error) {
	reasonFailed := func(i int) bool {
		return tce.CancellationReasons[i].Code != nil && *tce.CancellationReasons[i].Code == "ConditionalCheckFailed"
	}

	if reasonFailed(0) {
		// The purchase left PENDING underneath us. If a concurrent confirm
		// completed it, resolve idempotently; any other state is a violation.
		current, err := s.GetPurchase(ctx, purchaseID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to re-read purchase after settlement conflict: %w", err)
		}
		if current.Status == models.PurchaseCompleted {
			return current, false, nil
		}
		return nil, false, fmt.Errorf("%w: cannot confirm %s purchase", storage.ErrInvalidState, current.Status)
	}

	if reasonFailed(1) {
		return nil, false, storage.ErrInsufficientInventory
	}

	// Seller version conflict: a concurrent credit or debit moved the profile.
	// Confirm is documented idempotent, so the caller may retry safely.
	return nil, false, fmt.Errorf("settlement transaction cancelled: %s", tce.Error())
}

// uniqueTicketCode draws codes until one does not collide with an existing
// completed purchase, within a bounded number of attempts.
func (s *Store) uniqueTicketCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := ticketcode.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket code: %w", err)
		}

		_, err = s.GetPurchaseByTicketCode(ctx, code)
		if errors.Is(err, storage.ErrPurchaseNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check ticket code for collision: %w", err)
		}
	}

	return "", storage.ErrCodeGenerationExhausted
}
