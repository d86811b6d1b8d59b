package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/scheduler"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

const transactionUserGSI = "user_id-index"

// CreateTransaction records a new PENDING payment attempt for a purchase. A
// purchase may accumulate several attempts; only the webhook transition and
// the settlement conditions decide which one counts.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	now := time.Now()
	tx.Id = uuid.New().String()
	tx.Status = models.TransactionPending
	tx.CreatedAt = now
	tx.UpdatedAt = now

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                txAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create transaction in DynamoDB: %w", err)
	}

	return tx, nil
}

// GetTransaction retrieves a payment transaction from DynamoDB by its ID.
func (s *Store) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": txID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTransactionNotFound
	}

	var tx models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &tx, nil
}

// ListTransactionsByUserID retrieves a user's payment attempts, newest first.
func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(transactionUserGSI),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by user: %w", err)
	}

	var txs []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &txs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return txs, nil
}

// RecordWebhook applies a provider callback. A SUCCESS delivery must report
// the transaction's exact amount. The PENDING -> terminal update is
// conditional, so exactly one delivery wins; a redelivery with the same
// outcome resolves to a no-op success and a conflicting outcome is rejected.
// The winning SUCCESS delivery enqueues the purchase for settlement.
func (s *Store) RecordWebhook(ctx context.Context, txID string, outcome models.WebhookOutcome, reference string, amount int64) (*storage.WebhookResult, error) {
	var target models.TransactionStatus
	switch outcome {
	case models.WebhookSuccess:
		target = models.TransactionCompleted
	case models.WebhookFailure:
		target = models.TransactionFailed
	default:
		return nil, fmt.Errorf("unknown webhook outcome %q", outcome)
	}

	tx, err := s.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}

	// Failure callbacks are not required to echo the amount; a success that
	// collected a different amount than charged must never settle.
	if outcome == models.WebhookSuccess && amount != tx.Amount {
		return nil, fmt.Errorf("%w: webhook reports %d, transaction expects %d", storage.ErrAmountMismatch, amount, tx.Amount)
	}

	if tx.Status != models.TransactionPending {
		return s.resolveSettledWebhook(tx, target)
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: txID},
		},
		UpdateExpression:    aws.String("SET #status = :target, provider_ref = :ref, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":target":  &types.AttributeValueMemberS{Value: string(target)},
			":pending": &types.AttributeValueMemberS{Value: string(models.TransactionPending)},
			":ref":     &types.AttributeValueMemberS{Value: reference},
			":now":     nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Lost the race against another delivery of the same webhook.
			current, getErr := s.GetTransaction(ctx, txID)
			if getErr != nil {
				return nil, getErr
			}
			return s.resolveSettledWebhook(current, target)
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	tx.Status = target
	tx.ProviderRef = reference
	tx.UpdatedAt = now

	settled := target == models.TransactionCompleted
	if settled && s.Scheduler != nil {
		job := scheduler.SettlementJob{PurchaseID: tx.PurchaseId, TransactionID: tx.Id}
		if err := s.Scheduler.ScheduleSettlement(ctx, job); err != nil {
			// The transaction is already COMPLETED; a lost enqueue is
			// recovered by re-driving settlement through the manual confirm
			// endpoint, which is idempotent.
			slog.Log(ctx, slog.LevelError, "failed to enqueue settlement job", "purchase_id", tx.PurchaseId, "error", err)
		}
	}

	return &storage.WebhookResult{Settled: settled, Transaction: tx}, nil
}

// resolveSettledWebhook decides what a delivery against an already-terminal
// transaction means: same outcome is an idempotent no-op, a different one is
// an illegal transition.
func (s *Store) resolveSettledWebhook(tx *models.Transaction, target models.TransactionStatus) (*storage.WebhookResult, error) {
	if tx.Status == target {
		return &storage.WebhookResult{Settled: false, Transaction: tx}, nil
	}
	return nil, fmt.Errorf("%w: transaction already %s", storage.ErrInvalidState, tx.Status)
}
