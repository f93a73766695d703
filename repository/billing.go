package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"ovoky.com/billing/models"
)

type BillingRepository interface {
	GetDueRecords(now time.Time) ([]models.BillingRecord, error)
	GetFailedRecords() ([]models.BillingRecord, error)
	CreateRecord(record *models.BillingRecord) (int, error)
	HasPendingForCycle(numberId int, cycleStart time.Time) (bool, error)
	MarkPaid(recordId int, paidDate time.Time, gatewayTransactionId string, processedBy string) error
	MarkFailed(recordId int, reason string, processedBy string) error
	ResetToPending(recordId int, actor string) error
	Cancel(recordId int, actor string) error
	Refund(recordId int, actor string) error
	LogEvent(recordId int, level string, message string) error
}

type BillingService struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) BillingRepository {
	return NewBillingService(db)
}

func NewBillingService(db *sql.DB) *BillingService {
	return &BillingService{db: db}
}

// GetDueRecords selects every pending monthly or setup fee whose
// billing date has been reached. Refunds and prorated fees are never
// picked up automatically.
func (bs *BillingService) GetDueRecords(now time.Time) ([]models.BillingRecord, error) {
	results, err := bs.db.Query(`SELECT id, number_id, user_id, amount, currency, status, transaction_type, billing_date
	FROM billing_records
	WHERE status = 'pending' AND billing_date <= ? AND transaction_type IN ('monthly_fee', 'setup_fee')
	ORDER BY id`, now)
	if err != nil {
		return nil, errors.Wrap(err, "could not query due billing records")
	}
	defer results.Close()

	records := []models.BillingRecord{}
	for results.Next() {
		var record models.BillingRecord
		err = results.Scan(&record.Id, &record.NumberId, &record.UserId, &record.Amount,
			&record.Currency, &record.Status, &record.TransactionType, &record.BillingDate)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan billing record")
		}
		records = append(records, record)
	}
	return records, results.Err()
}

// GetFailedRecords selects every failed fee with its failure reason so
// the retry pass can decide which ones go back to pending
func (bs *BillingService) GetFailedRecords() ([]models.BillingRecord, error) {
	results, err := bs.db.Query(`SELECT id, number_id, user_id, amount, currency, status, transaction_type, billing_date, failure_reason
	FROM billing_records
	WHERE status = 'failed' AND transaction_type IN ('monthly_fee', 'setup_fee')
	ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "could not query failed billing records")
	}
	defer results.Close()

	records := []models.BillingRecord{}
	for results.Next() {
		var record models.BillingRecord
		var reason sql.NullString
		err = results.Scan(&record.Id, &record.NumberId, &record.UserId, &record.Amount,
			&record.Currency, &record.Status, &record.TransactionType, &record.BillingDate, &reason)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan failed billing record")
		}
		record.FailureReason = reason.String
		records = append(records, record)
	}
	return records, results.Err()
}

func (bs *BillingService) CreateRecord(record *models.BillingRecord) (int, error) {
	stmt, err := bs.db.Prepare("INSERT INTO billing_records (`number_id`, `user_id`, `amount`, `currency`, `status`, `transaction_type`, `billing_date`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, errors.Wrap(err, "could not prepare billing record insert")
	}
	defer stmt.Close()

	res, err := stmt.Exec(record.NumberId, record.UserId, record.Amount, record.Currency,
		record.Status, record.TransactionType, record.BillingDate, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "could not insert billing record")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "could not get billing record insert id")
	}
	return int(id), nil
}

func (bs *BillingService) HasPendingForCycle(numberId int, cycleStart time.Time) (bool, error) {
	row := bs.db.QueryRow(`SELECT COUNT(*) FROM billing_records
	WHERE number_id = ? AND transaction_type = 'monthly_fee' AND status = 'pending' AND billing_date >= ?`,
		numberId, cycleStart)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, errors.Wrap(err, "could not count pending records")
	}
	return count > 0, nil
}

// MarkPaid finalizes a successful debit. The pending guard keeps the
// transition idempotent, and failure fields are cleared so paid_date
// and gateway_transaction_id are only set together with status paid.
func (bs *BillingService) MarkPaid(recordId int, paidDate time.Time, gatewayTransactionId string, processedBy string) error {
	stmt, err := bs.db.Prepare("UPDATE billing_records SET status = 'paid', paid_date = ?, gateway_transaction_id = ?, processed_by = ?, failure_reason = NULL, updated_at = ? WHERE id = ? AND status = 'pending'")
	if err != nil {
		return errors.Wrap(err, "could not prepare paid update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(paidDate, gatewayTransactionId, processedBy, time.Now(), recordId)
	return errors.Wrap(err, "could not mark record paid")
}

// MarkFailed records a classified debit failure. The record stays
// eligible for a later pass once an operator or retry policy resets
// it; payment fields are cleared to hold the status invariant.
func (bs *BillingService) MarkFailed(recordId int, reason string, processedBy string) error {
	stmt, err := bs.db.Prepare("UPDATE billing_records SET status = 'failed', failure_reason = ?, processed_by = ?, paid_date = NULL, gateway_transaction_id = NULL, updated_at = ? WHERE id = ? AND status = 'pending'")
	if err != nil {
		return errors.Wrap(err, "could not prepare failed update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(reason, processedBy, time.Now(), recordId)
	return errors.Wrap(err, "could not mark record failed")
}

// ResetToPending returns a failed record to the pool the reconciler
// collects from. The failed guard keeps the transition idempotent and
// the failure reason is cleared to hold the status invariant.
func (bs *BillingService) ResetToPending(recordId int, actor string) error {
	stmt, err := bs.db.Prepare("UPDATE billing_records SET status = 'pending', failure_reason = NULL, processed_by = ?, updated_at = ? WHERE id = ? AND status = 'failed'")
	if err != nil {
		return errors.Wrap(err, "could not prepare pending reset")
	}
	defer stmt.Close()

	_, err = stmt.Exec(actor, time.Now(), recordId)
	return errors.Wrap(err, "could not reset record to pending")
}

// Cancel is an administrative transition allowed from any non-terminal
// state
func (bs *BillingService) Cancel(recordId int, actor string) error {
	stmt, err := bs.db.Prepare("UPDATE billing_records SET status = 'cancelled', processed_by = ?, updated_at = ? WHERE id = ? AND status NOT IN ('cancelled', 'refunded')")
	if err != nil {
		return errors.Wrap(err, "could not prepare cancel update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(actor, time.Now(), recordId)
	return errors.Wrap(err, "could not cancel record")
}

// Refund is an administrative transition allowed from paid only
func (bs *BillingService) Refund(recordId int, actor string) error {
	stmt, err := bs.db.Prepare("UPDATE billing_records SET status = 'refunded', processed_by = ?, updated_at = ? WHERE id = ? AND status = 'paid'")
	if err != nil {
		return errors.Wrap(err, "could not prepare refund update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(actor, time.Now(), recordId)
	return errors.Wrap(err, "could not refund record")
}

// LogEvent writes an audit row for a record, used for configuration
// errors and reconciliation anomalies
func (bs *BillingService) LogEvent(recordId int, level string, message string) error {
	stmt, err := bs.db.Prepare("INSERT INTO reconciliation_logs (`record_id`, `level`, `message`, `created_at`) VALUES (?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "could not prepare log insert")
	}
	defer stmt.Close()

	_, err = stmt.Exec(recordId, level, message, time.Now())
	return errors.Wrap(err, "could not insert log event")
}
