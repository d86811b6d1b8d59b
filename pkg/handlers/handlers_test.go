package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/authz"
	"github.com/hotspotpay/voucher-ledger/pkg/config"
	"github.com/hotspotpay/voucher-ledger/pkg/handlers"
	"github.com/hotspotpay/voucher-ledger/pkg/middleware"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/payments"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	"github.com/hotspotpay/voucher-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		MinWithdrawalAmount: 1000,
		MaxWithdrawalAmount: 1000000,
		Currency:            "XOF",
	}
}

func testRouter(store storage.Storage) *chi.Mux {
	providers := payments.NewRegistry()
	for _, p := range []payments.Provider{payments.MTNMobileMoney, payments.MoovMoney, payments.OrangeMoney, payments.BankTransfer} {
		providers.Register(payments.NewSandboxProvider(p))
	}

	router := chi.NewRouter()
	handlers.NewApiHandler(store, testConfig(), providers).Routes(router)
	return router
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

// decodeSuccess asserts the success envelope and unmarshals its data field
// into out.
func decodeSuccess(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	if out != nil {
		assert.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

// newRoleRequest builds a request with the role header the gateway would have
// stamped after authenticating the caller.
func newRoleRequest(method, target string, body io.Reader, role authz.Role) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(middleware.RoleHeader, string(role))
	return req
}

func TestCreatePurchase(t *testing.T) {
	newPurchase := api.NewPurchase{UserId: "user1", TicketId: "ticket1", Quantity: 2, PaymentMethod: "MTN_MOBILE_MONEY"}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		created := &models.Purchase{Id: "purchase1", UserId: "user1", TicketId: "ticket1", Quantity: 2, UnitPrice: 500, TotalAmount: 1000, Status: models.PurchasePending}
		mockStorage.On("CreatePurchase", mock.Anything, mock.Anything).Return(created, nil)

		body, _ := json.Marshal(newPurchase)
		req := newRoleRequest(http.MethodPost, "/purchases", bytes.NewReader(body), authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.Purchase
		decodeSuccess(t, rr, &resp)
		assert.Equal(t, "purchase1", resp.Id)
		assert.Equal(t, int64(1000), resp.TotalAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unsupported Payment Method", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		bad := newPurchase
		bad.PaymentMethod = "CARRIER_PIGEON"
		body, _ := json.Marshal(bad)
		req := newRoleRequest(http.MethodPost, "/purchases", bytes.NewReader(body), authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, api.KindValidationError, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Inventory", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreatePurchase", mock.Anything, mock.Anything).Return(nil, storage.ErrInsufficientInventory)

		body, _ := json.Marshal(newPurchase)
		req := newRoleRequest(http.MethodPost, "/purchases", bytes.NewReader(body), authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, api.KindInsufficientInventory, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})
}

func TestConfirmPurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		confirmed := &models.Purchase{Id: "purchase1", Status: models.PurchaseCompleted, TicketCode: "A1B2C3D4"}
		mockStorage.On("ConfirmPurchase", mock.Anything, "purchase1").Return(confirmed, true, nil)

		req := newRoleRequest(http.MethodPost, "/purchases/purchase1/confirm", nil, authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.Purchase
		decodeSuccess(t, rr, &resp)
		assert.Equal(t, "A1B2C3D4", resp.TicketCode)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Cancelled Purchase", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ConfirmPurchase", mock.Anything, "purchase1").Return(nil, false, storage.ErrInvalidState)

		req := newRoleRequest(http.MethodPost, "/purchases/purchase1/confirm", nil, authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, api.KindInvalidState, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})
}

func TestCancelPurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CancelPurchase", mock.Anything, "purchase1").Return(nil)

		req := newRoleRequest(http.MethodPost, "/purchases/purchase1/cancel", nil, authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		decodeSuccess(t, rr, nil)
		mockStorage.AssertExpectations(t)
	})
}

func TestInitiatePayment(t *testing.T) {
	pending := &models.Purchase{Id: "purchase1", UserId: "user1", TotalAmount: 1000, PaymentMethod: "MTN_MOBILE_MONEY", Status: models.PurchasePending}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetPurchase", mock.Anything, "purchase1").Return(pending, nil)
		createdTx := &models.Transaction{Id: "tx1", PurchaseId: "purchase1", UserId: "user1", Amount: 1000, Status: models.TransactionPending}
		mockStorage.On("CreateTransaction", mock.Anything, mock.Anything).Return(createdTx, nil)

		body, _ := json.Marshal(api.InitiatePayment{PurchaseId: "purchase1", PhoneNumber: "+22670000001"})
		req := newRoleRequest(http.MethodPost, "/payments", bytes.NewReader(body), authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Already Paid", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		completed := *pending
		completed.Status = models.PurchaseCompleted
		mockStorage.On("GetPurchase", mock.Anything, "purchase1").Return(&completed, nil)

		body, _ := json.Marshal(api.InitiatePayment{PurchaseId: "purchase1", PhoneNumber: "+22670000001"})
		req := newRoleRequest(http.MethodPost, "/payments", bytes.NewReader(body), authz.RoleClient)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, api.KindDuplicateOperation, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})
}

func TestPaymentWebhook(t *testing.T) {
	t.Run("Winning Delivery", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		tx := &models.Transaction{Id: "tx1", PurchaseId: "purchase1", Status: models.TransactionCompleted, ProviderRef: "MP123"}
		mockStorage.On("RecordWebhook", mock.Anything, "tx1", models.WebhookSuccess, "MP123", int64(1000)).Return(&storage.WebhookResult{Settled: true, Transaction: tx}, nil)

		body, _ := json.Marshal(api.WebhookPayload{TransactionId: "tx1", Status: "SUCCESS", Reference: "MP123", Amount: 1000})
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook/MTN_MOBILE_MONEY", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		body, _ := json.Marshal(api.WebhookPayload{TransactionId: "tx1", Status: "MAYBE"})
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook/MTN_MOBILE_MONEY", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Amount Mismatch", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("RecordWebhook", mock.Anything, "tx1", models.WebhookSuccess, "MP123", int64(999)).Return(nil, storage.ErrAmountMismatch)

		body, _ := json.Marshal(api.WebhookPayload{TransactionId: "tx1", Status: "SUCCESS", Reference: "MP123", Amount: 999})
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook/MTN_MOBILE_MONEY", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, api.KindValidationError, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Conflicting Redelivery", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("RecordWebhook", mock.Anything, "tx1", models.WebhookFailure, "MP123", int64(0)).Return(nil, storage.ErrInvalidState)

		body, _ := json.Marshal(api.WebhookPayload{TransactionId: "tx1", Status: "FAILURE", Reference: "MP123"})
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook/MTN_MOBILE_MONEY", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	newWithdrawal := api.NewWithdrawal{SellerId: "seller1", Amount: 5000, PaymentMethod: "MTN_MOBILE_MONEY"}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		created := &models.Withdrawal{Id: "wd1", SellerId: "seller1", Amount: 5000, Status: models.WithdrawalPending}
		mockStorage.On("CreateWithdrawal", mock.Anything, mock.Anything).Return(created, nil)

		body, _ := json.Marshal(newWithdrawal)
		req := newRoleRequest(http.MethodPost, "/withdrawals", bytes.NewReader(body), authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Below Minimum", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		small := newWithdrawal
		small.Amount = 500
		body, _ := json.Marshal(small)
		req := newRoleRequest(http.MethodPost, "/withdrawals", bytes.NewReader(body), authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, api.KindBelowMinimum, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Above Maximum", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		big := newWithdrawal
		big.Amount = 2000000
		body, _ := json.Marshal(big)
		req := newRoleRequest(http.MethodPost, "/withdrawals", bytes.NewReader(body), authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, api.KindAboveMaximum, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateWithdrawal", mock.Anything, mock.Anything).Return(nil, storage.ErrInsufficientBalance)

		body, _ := json.Marshal(newWithdrawal)
		req := newRoleRequest(http.MethodPost, "/withdrawals", bytes.NewReader(body), authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, api.KindInsufficientBalance, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})
}

func TestListWithdrawals(t *testing.T) {
	t.Run("Admin Sees Pending Queue", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		pending := []models.Withdrawal{{Id: "wd1", SellerId: "seller1", Amount: 5000, Status: models.WithdrawalPending}}
		mockStorage.On("ListWithdrawalsByStatus", mock.Anything, models.WithdrawalPending).Return(pending, nil)

		req := newRoleRequest(http.MethodGet, "/withdrawals?status=PENDING", nil, authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Seller Denied", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		req := newRoleRequest(http.MethodGet, "/withdrawals", nil, authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		approved := &models.Withdrawal{Id: "wd1", SellerId: "seller1", Amount: 5000, Status: models.WithdrawalApproved}
		mockStorage.On("ApproveWithdrawal", mock.Anything, "wd1", "ok").Return(approved, nil)

		body, _ := json.Marshal(api.WithdrawalReview{AdminNotes: "ok"})
		req := newRoleRequest(http.MethodPost, "/withdrawals/wd1/approve", bytes.NewReader(body), authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Seller Cannot Approve", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		body, _ := json.Marshal(api.WithdrawalReview{AdminNotes: "ok"})
		req := newRoleRequest(http.MethodPost, "/withdrawals/wd1/approve", bytes.NewReader(body), authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, api.KindForbidden, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Balance Dropped", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ApproveWithdrawal", mock.Anything, "wd1", "").Return(nil, storage.ErrInsufficientBalance)

		body, _ := json.Marshal(api.WithdrawalReview{})
		req := newRoleRequest(http.MethodPost, "/withdrawals/wd1/approve", bytes.NewReader(body), authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, api.KindInsufficientBalance, decodeError(t, rr).Error)
		mockStorage.AssertExpectations(t)
	})
}

func TestRejectWithdrawal(t *testing.T) {
	t.Run("Missing Reason", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		body, _ := json.Marshal(api.WithdrawalReview{})
		req := newRoleRequest(http.MethodPost, "/withdrawals/wd1/reject", bytes.NewReader(body), authz.RoleAdmin)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestGetTicketStatusByCode(t *testing.T) {
	t.Run("Active Code", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		purchase := &models.Purchase{Id: "purchase1", TicketId: "ticket1", TicketCode: "A1B2C3D4", Status: models.PurchaseCompleted, ExpiresAt: time.Now().Add(30 * time.Minute)}
		ticket := &models.Ticket{Id: "ticket1", Name: "1 Hour Pass", DurationMinutes: 60}
		mockStorage.On("GetPurchaseByTicketCode", mock.Anything, "A1B2C3D4").Return(purchase, nil)
		mockStorage.On("GetTicket", mock.Anything, "ticket1").Return(ticket, nil)

		req := httptest.NewRequest(http.MethodGet, "/tickets/code/A1B2C3D4", nil)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.TicketStatus
		decodeSuccess(t, rr, &resp)
		assert.False(t, resp.IsExpired)
		assert.Greater(t, resp.RemainingSeconds, int64(0))
		mockStorage.AssertExpectations(t)
	})

	t.Run("Malformed Code", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		req := httptest.NewRequest(http.MethodGet, "/tickets/code/nope", nil)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetPurchaseByTicketCode", mock.Anything, "ZZZZ9999").Return(nil, storage.ErrPurchaseNotFound)

		req := httptest.NewRequest(http.MethodGet, "/tickets/code/ZZZZ9999", nil)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestDeactivateTicket(t *testing.T) {
	t.Run("Pending Purchases Block Deactivation", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("DeactivateTicket", mock.Anything, "ticket1").Return(storage.ErrActiveReservationsExist)

		req := newRoleRequest(http.MethodDelete, "/tickets/ticket1", nil, authz.RoleSeller)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestListPurchasesByUserId(t *testing.T) {
	t.Run("Status Filter", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListPurchasesByUserID", mock.Anything, "user1", models.PurchaseCompleted).Return([]models.Purchase{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/purchases?status=COMPLETED", nil)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Status Filter", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/purchases?status=LIMBO", nil)
		rr := httptest.NewRecorder()

		testRouter(mockStorage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
