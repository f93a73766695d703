package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	gateway "ovoky.com/billing/handlers/gateway"
	"ovoky.com/billing/mocks"
	"ovoky.com/billing/models"
	"ovoky.com/billing/repository"
)

func testDueRecord() models.BillingRecord {
	return models.BillingRecord{
		Id:              10,
		NumberId:        5,
		UserId:          101,
		Amount:          10,
		Currency:        "USD",
		Status:          models.BillingStatusPending,
		TransactionType: models.TransactionMonthlyFee,
		BillingDate:     time.Now().AddDate(0, 0, -1),
	}
}

func testAssignedNumber() *models.PhoneNumber {
	return &models.PhoneNumber{
		Id:         5,
		UserId:     101,
		Number:     "12125551234",
		Country:    "US",
		NumberType: "Mobile",
		Status:     models.NumberStatusAssigned,
	}
}

func TestReconciliationRun(t *testing.T) {
	t.Parallel()

	t.Run("Should abort the run when due records cannot be selected", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		selectErr := errors.New("db unreachable")
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return(nil, selectErr)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.Error(t, err)
		assert.Nil(t, summary)
	})

	t.Run("Should mark a record paid and update the number on gateway success", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		record := testDueRecord()
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{record}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("acct-101", nil)
		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockGateway.EXPECT().Debit("acct-101", 10.0, "USD", "monthly_fee for number 12125551234").
			Return(gateway.DebitResult{"result": "success", "tx_id": "tx123"}, nil)
		mockBilling.EXPECT().MarkPaid(10, mock.Anything, "tx123", "test").Return(nil)
		mockNumbers.EXPECT().UpdateLastBilled(5, mock.Anything).Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Processed)
		assert.Equal(t, 1, summary.Paid)
		assert.Equal(t, 0, summary.Failed)
		assert.Equal(t, 0, summary.ErrorCount)

		mockNumbers.AssertNotCalled(t, "Suspend", mock.Anything)
	})

	t.Run("Should mark a record failed and suspend the number on insufficient funds", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		record := testDueRecord()
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{record}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("acct-101", nil)
		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockGateway.EXPECT().Debit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(gateway.DebitResult{"error": "Insufficient funds"}, nil)
		mockBilling.EXPECT().MarkFailed(10, "Insufficient funds", "test").Return(nil)
		mockNumbers.EXPECT().Suspend(5).Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 0, summary.Paid)
	})

	t.Run("Should not suspend the number for an unrelated failure reason", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		record := testDueRecord()
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{record}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("acct-101", nil)
		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockGateway.EXPECT().Debit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(gateway.DebitResult{"error": "Account blocked"}, nil)
		mockBilling.EXPECT().MarkFailed(10, "Account blocked", "test").Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)

		mockNumbers.AssertNotCalled(t, "Suspend", mock.Anything)
	})

	t.Run("Should skip and keep pending a record whose user has no gateway account", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		record := testDueRecord()
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{record}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("", repository.ErrNoGatewayAccount)
		mockBilling.EXPECT().LogEvent(10, "config_error", mock.Anything).Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Skipped)
		assert.Equal(t, 1, summary.ErrorCount)

		mockGateway.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockBilling.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
		mockBilling.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should isolate a gateway error to its record and continue the run", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		first := testDueRecord()
		second := testDueRecord()
		second.Id = 11
		second.NumberId = 6
		second.UserId = 102

		secondNumber := testAssignedNumber()
		secondNumber.Id = 6
		secondNumber.UserId = 102
		secondNumber.Number = "12125550000"

		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{first, second}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("acct-101", nil)
		mockUsers.EXPECT().GetGatewayAccountId(102).Return("acct-102", nil)
		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockNumbers.EXPECT().GetNumber(6).Return(secondNumber, nil)

		mockGateway.EXPECT().Debit("acct-101", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("gateway timeout"))
		mockGateway.EXPECT().Debit("acct-102", mock.Anything, mock.Anything, mock.Anything).
			Return(gateway.DebitResult{"result": "success", "tx_id": "tx456"}, nil)

		mockBilling.EXPECT().LogEvent(10, "error", mock.Anything).Return(nil)
		mockBilling.EXPECT().MarkPaid(11, mock.Anything, "tx456", "test").Return(nil)
		mockNumbers.EXPECT().UpdateLastBilled(6, mock.Anything).Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Processed)
		assert.Equal(t, 1, summary.Paid)
		assert.Equal(t, 1, summary.ErrorCount)

		// the timed-out record was neither paid nor failed
		mockBilling.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should record an anomaly when the billing update fails after a successful debit", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockUsers := &mocks.UserRepository{}
		mockGateway := &mocks.GatewayHandler{}

		record := testDueRecord()
		mockBilling.EXPECT().GetDueRecords(mock.Anything).Return([]models.BillingRecord{record}, nil)
		mockUsers.EXPECT().GetGatewayAccountId(101).Return("acct-101", nil)
		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockGateway.EXPECT().Debit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(gateway.DebitResult{"result": "success", "tx_id": "tx123"}, nil)
		mockBilling.EXPECT().MarkPaid(10, mock.Anything, "tx123", "test").Return(errors.New("connection reset"))
		mockBilling.EXPECT().LogEvent(10, "anomaly", mock.Anything).Return(nil)

		job := NewReconciliationJob(mockBilling, mockNumbers, mockUsers, mockGateway, "test")
		summary, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.Paid)
		assert.Equal(t, 1, summary.ErrorCount)
		assert.Contains(t, summary.Errors[0], "anomaly")

		mockNumbers.AssertNotCalled(t, "UpdateLastBilled", mock.Anything, mock.Anything)
	})
}

func TestRunSummaryErrorPreview(t *testing.T) {
	t.Parallel()

	summary := &models.RunSummary{}
	for i := 0; i < 25; i++ {
		summary.AddError("boom")
	}
	assert.Equal(t, 25, summary.ErrorCount)
	assert.Len(t, summary.Errors, 10)
}
