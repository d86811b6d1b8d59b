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

const withdrawalSellerGSI = "seller_id-index"

// CreateWithdrawal records a new PENDING withdrawal request. The balance check
// here is advisory; the conditional debit inside ApproveWithdrawal is what
// actually guards the funds.
func (s *Store) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) (*models.Withdrawal, error) {
	seller, err := s.GetSellerProfile(ctx, w.SellerId)
	if err != nil {
		return nil, err
	}

	if seller.Balance < w.Amount {
		return nil, storage.ErrInsufficientBalance
	}

	now := time.Now()
	w.Id = uuid.New().String()
	w.Status = models.WithdrawalPending
	w.CreatedAt = now
	w.UpdatedAt = now

	withdrawalAV, err := attributevalue.MarshalMap(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.WithdrawalsTableName),
		Item:                withdrawalAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create withdrawal in DynamoDB: %w", err)
	}

	return w, nil
}

// GetWithdrawal retrieves a withdrawal request from DynamoDB by its ID.
func (s *Store) GetWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": withdrawalID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal withdrawal ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.WithdrawalsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrWithdrawalNotFound
	}

	var w models.Withdrawal
	if err := attributevalue.UnmarshalMap(result.Item, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal: %w", err)
	}

	return &w, nil
}

// ListWithdrawalsBySellerID retrieves a seller's withdrawal requests, newest
// first. A non-empty status narrows the result.
func (s *Store) ListWithdrawalsBySellerID(ctx context.Context, sellerID string, status models.WithdrawalStatus) ([]models.Withdrawal, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalSellerGSI),
		KeyConditionExpression: aws.String("seller_id = :seller_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seller_id": &types.AttributeValueMemberS{Value: sellerID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals by seller: %w", err)
	}

	var withdrawals []models.Withdrawal
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawals: %w", err)
	}

	return withdrawals, nil
}

// ListWithdrawalsByStatus retrieves withdrawal requests across all sellers for
// the admin review queue. The table stays small relative to purchases, so a
// filtered scan is enough here.
func (s *Store) ListWithdrawalsByStatus(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.WithdrawalsTableName),
	}

	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan withdrawals table: %w", err)
	}

	var withdrawals []models.Withdrawal
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawals: %w", err)
	}

	return withdrawals, nil
}

// ApproveWithdrawal transitions a pending withdrawal to APPROVED and debits
// the seller's balance as one atomic unit. The balance is re-read here, not
// taken from request time, and the debit carries a balance >= amount
// condition so the approval fails cleanly if the balance dropped in between.
func (s *Store) ApproveWithdrawal(ctx context.Context, withdrawalID, adminNotes string) (*models.Withdrawal, error) {
	w, err := s.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	if w.Status != models.WithdrawalPending {
		return nil, fmt.Errorf("%w: cannot approve %s withdrawal", storage.ErrInvalidState, w.Status)
	}

	seller, err := s.GetSellerProfile(ctx, w.SellerId)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller profile for approval: %w", err)
	}

	if seller.Balance < w.Amount {
		return nil, storage.ErrInsufficientBalance
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Approve the withdrawal.
				Update: &types.Update{
					TableName: aws.String(s.WithdrawalsTableName),
					Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: w.Id}},
					UpdateExpression:    aws.String("SET #status = :approved, admin_notes = :notes, processed_at = :now, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":approved": &types.AttributeValueMemberS{Value: string(models.WithdrawalApproved)},
						":pending":  &types.AttributeValueMemberS{Value: string(models.WithdrawalPending)},
						":notes":    &types.AttributeValueMemberS{Value: adminNotes},
						":now":      nowAV,
					},
				},
			},
			{
				// Operation 2: Debit the seller's balance.
				Update: &types.Update{
					TableName: aws.String(s.SellersTableName),
					Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: seller.Id}},
					UpdateExpression:    aws.String("SET balance = balance - :amount, total_withdrawn = total_withdrawn + :amount, version = version + :inc"),
					ConditionExpression: aws.String("balance >= :amount AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", w.Amount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", seller.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) == 2 {
			return nil, s.approveCancellation(ctx, withdrawalID, w.SellerId, w.Amount, tce)
		}
		return nil, fmt.Errorf("failed to execute approval transaction: %w", err)
	}

	w.Status = models.WithdrawalApproved
	w.AdminNotes = adminNotes
	w.ProcessedAt = &now
	w.UpdatedAt = now

	return w, nil
}

// approveCancellation maps a cancelled approval transaction to a domain error.
func (s *Store) approveCancellation(ctx context.Context, withdrawalID, sellerID string, amount int64, tce *types.TransactionCanceledException) error {
	reasonFailed := func(i int) bool {
		return tce.CancellationReasons[i].Code != nil && *tce.CancellationReasons[i].Code == "ConditionalCheckFailed"
	}

	if reasonFailed(0) {
		current, err := s.GetWithdrawal(ctx, withdrawalID)
		if err != nil {
			return fmt.Errorf("failed to re-read withdrawal after approval conflict: %w", err)
		}
		return fmt.Errorf("%w: cannot approve %s withdrawal", storage.ErrInvalidState, current.Status)
	}

	if reasonFailed(1) {
		seller, err := s.GetSellerProfile(ctx, sellerID)
		if err == nil && seller.Balance < amount {
			return storage.ErrInsufficientBalance
		}
		// Version conflict from a concurrent credit or debit; the caller may
		// retry the approval against the fresh balance.
		return fmt.Errorf("approval transaction cancelled: %s", tce.Error())
	}

	return fmt.Errorf("approval transaction cancelled: %s", tce.Error())
}

// RejectWithdrawal transitions a pending withdrawal to REJECTED. The reason is
// mandatory and no balance changes.
func (s *Store) RejectWithdrawal(ctx context.Context, withdrawalID, adminNotes string) (*models.Withdrawal, error) {
	return s.transitionWithdrawal(ctx, withdrawalID, models.WithdrawalPending, models.WithdrawalRejected, adminNotes)
}

// ProcessWithdrawal transitions an approved withdrawal to PROCESSED once the
// payout has been handed off to the provider.
func (s *Store) ProcessWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error) {
	return s.transitionWithdrawal(ctx, withdrawalID, models.WithdrawalApproved, models.WithdrawalProcessed, "")
}

// transitionWithdrawal performs a conditional status update in one round trip.
func (s *Store) transitionWithdrawal(ctx context.Context, withdrawalID string, from, to models.WithdrawalStatus, adminNotes string) (*models.Withdrawal, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	update := "SET #status = :to, processed_at = :now, updated_at = :now"
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":now":  nowAV,
	}
	if adminNotes != "" {
		update += ", admin_notes = :notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: adminNotes}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.WithdrawalsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: withdrawalID},
		},
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			current, getErr := s.GetWithdrawal(ctx, withdrawalID)
			if getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("%w: cannot move %s withdrawal to %s", storage.ErrInvalidState, current.Status, to)
		}
		return nil, fmt.Errorf("failed to update withdrawal status: %w", err)
	}

	w, err := s.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	return w, nil
}
