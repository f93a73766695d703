package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"ovoky.com/billing/mocks"
	"ovoky.com/billing/models"
)

func testFailedRecord(id int, reason string) models.BillingRecord {
	return models.BillingRecord{
		Id:              id,
		NumberId:        5,
		UserId:          101,
		Amount:          10,
		Currency:        "USD",
		Status:          models.BillingStatusFailed,
		TransactionType: models.TransactionMonthlyFee,
		BillingDate:     time.Now().AddDate(0, 0, -2),
		FailureReason:   reason,
	}
}

func TestRetryFailedBilling(t *testing.T) {
	t.Parallel()

	t.Run("Should return a transient failure to pending", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockBilling.EXPECT().GetFailedRecords().
			Return([]models.BillingRecord{testFailedRecord(10, "gateway unavailable")}, nil)
		mockBilling.EXPECT().ResetToPending(10, "retry_failed_billing").Return(nil)

		job := NewRetryFailedJob(mockBilling, "retry_failed_billing")
		reset, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, reset)
	})

	t.Run("Should leave a balance failure for the operator", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockBilling.EXPECT().GetFailedRecords().
			Return([]models.BillingRecord{testFailedRecord(10, "Insufficient funds")}, nil)

		job := NewRetryFailedJob(mockBilling, "retry_failed_billing")
		reset, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 0, reset)

		mockBilling.AssertNotCalled(t, "ResetToPending", mock.Anything, mock.Anything)
	})

	t.Run("Should isolate a reset error to its record and continue", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockBilling.EXPECT().GetFailedRecords().Return([]models.BillingRecord{
			testFailedRecord(10, "gateway unavailable"),
			testFailedRecord(11, "gateway timeout"),
		}, nil)
		mockBilling.EXPECT().ResetToPending(10, "retry_failed_billing").Return(errors.New("connection reset"))
		mockBilling.EXPECT().ResetToPending(11, "retry_failed_billing").Return(nil)

		job := NewRetryFailedJob(mockBilling, "retry_failed_billing")
		reset, err := job.Run()
		assert.NoError(t, err)
		assert.Equal(t, 1, reset)
	})

	t.Run("Should abort when failed records cannot be selected", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockBilling.EXPECT().GetFailedRecords().Return(nil, errors.New("db unreachable"))

		job := NewRetryFailedJob(mockBilling, "retry_failed_billing")
		_, err := job.Run()
		assert.Error(t, err)
	})
}
