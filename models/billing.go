package models

import "time"

// Billing record statuses
const (
	BillingStatusPending   = "pending"
	BillingStatusPaid      = "paid"
	BillingStatusFailed    = "failed"
	BillingStatusCancelled = "cancelled"
	BillingStatusRefunded  = "refunded"
)

// Transaction types
const (
	TransactionMonthlyFee  = "monthly_fee"
	TransactionSetupFee    = "setup_fee"
	TransactionProratedFee = "prorated_fee"
	TransactionRefund      = "refund"
)

// DefaultCurrency is used for records created without an explicit currency
const DefaultCurrency = "USD"

// BillingRecord is one charge obligation against a phone number.
// PaidDate and GatewayTransactionId are set only while status is paid,
// FailureReason only while status is failed.
type BillingRecord struct {
	Id                   int
	NumberId             int
	UserId               int
	Amount               float64
	Currency             string
	Status               string
	TransactionType      string
	BillingDate          time.Time
	PaidDate             *time.Time
	FailureReason        string
	GatewayTransactionId string
	ProcessedBy          string
}

// RunSummary aggregates the outcome of one reconciliation pass
type RunSummary struct {
	Processed  int
	Paid       int
	Failed     int
	Skipped    int
	ErrorCount int
	Errors     []string
}

// error preview is capped, exact counts are kept
const runErrorPreviewLimit = 10

func (s *RunSummary) AddError(msg string) {
	s.ErrorCount++
	if len(s.Errors) < runErrorPreviewLimit {
		s.Errors = append(s.Errors, msg)
	}
}
