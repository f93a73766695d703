package cmd

import (
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gateway "ovoky.com/billing/handlers/gateway"
	models "ovoky.com/billing/models"
	"ovoky.com/billing/repository"
	utils "ovoky.com/billing/utils"
)

// suspensionPattern is the only automatic suspension trigger: a debit
// failure whose reason points at the account balance
var suspensionPattern = regexp.MustCompile(`(?i)insufficient|balance`)

// ReconciliationJob executes due billing records against the prepaid
// gateway and records outcomes. Records are processed sequentially,
// one debit attempt per record per run; overlapping runs are the
// caller's responsibility to prevent (see cmd/distributor).
type ReconciliationJob struct {
	billingRepository repository.BillingRepository
	numberRepository  repository.NumberRepository
	userRepository    repository.UserRepository
	gateway           gateway.GatewayHandler
	logger            *logrus.Entry
	now               func() time.Time
	processedBy       string
}

func NewReconciliationJob(
	billingRepository repository.BillingRepository,
	numberRepository repository.NumberRepository,
	userRepository repository.UserRepository,
	gatewayHandler gateway.GatewayHandler,
	processedBy string,
) *ReconciliationJob {
	return &ReconciliationJob{
		billingRepository: billingRepository,
		numberRepository:  numberRepository,
		userRepository:    userRepository,
		gateway:           gatewayHandler,
		logger:            utils.Logger("billing_reconciliation"),
		now:               time.Now,
		processedBy:       processedBy,
	}
}

// cron tab to reconcile due billing records against the gateway
func (rj *ReconciliationJob) Run() (*models.RunSummary, error) {
	now := rj.now()
	records, err := rj.billingRepository.GetDueRecords(now)
	if err != nil {
		// whole-run setup failure, nothing was processed
		return nil, errors.Wrap(err, "could not select due billing records")
	}

	summary := &models.RunSummary{}
	rj.logger.Infof("selected %d due billing records", len(records))

	for _, record := range records {
		summary.Processed++
		rj.processRecord(record, now, summary)
	}

	rj.logger.Infof("reconciliation finished: processed=%d paid=%d failed=%d skipped=%d errors=%d",
		summary.Processed, summary.Paid, summary.Failed, summary.Skipped, summary.ErrorCount)
	return summary, nil
}

// processRecord handles one record in isolation; any error is
// attributed to this record only and the run continues
func (rj *ReconciliationJob) processRecord(record models.BillingRecord, now time.Time, summary *models.RunSummary) {
	accountId, err := rj.userRepository.GetGatewayAccountId(record.UserId)
	if errors.Is(err, repository.ErrNoGatewayAccount) {
		// configuration error: record stays pending so it is retried
		// once an operator provisions the account
		msg := fmt.Sprintf("record %d: user %d has no gateway account", record.Id, record.UserId)
		rj.logger.Warn(msg)
		rj.logEvent(record.Id, "config_error", msg)
		summary.Skipped++
		summary.AddError(msg)
		return
	}
	if err != nil {
		rj.recordError(record.Id, summary, err.Error())
		return
	}

	number, err := rj.numberRepository.GetNumber(record.NumberId)
	if err != nil {
		rj.recordError(record.Id, summary, err.Error())
		return
	}

	note := utils.PaymentNote(record.TransactionType, number.Number)
	result, err := rj.gateway.Debit(accountId, record.Amount, record.Currency, note)
	if err != nil {
		// faults and timeouts abort this call only; the record stays
		// pending for the next cycle
		rj.recordError(record.Id, summary, fmt.Sprintf("gateway debit failed: %s", err.Error()))
		return
	}

	outcome := gateway.Classify(result)
	if outcome.Success {
		rj.finalizePaid(record, number, outcome, now, summary)
		return
	}
	rj.finalizeFailed(record, number, outcome, summary)
}

func (rj *ReconciliationJob) finalizePaid(record models.BillingRecord, number *models.PhoneNumber, outcome gateway.Outcome, now time.Time, summary *models.RunSummary) {
	err := rj.billingRepository.MarkPaid(record.Id, now, outcome.TransactionId, rj.processedBy)
	if err != nil {
		// money moved but the ledger write failed; flag for manual
		// follow-up, no compensating rollback
		msg := fmt.Sprintf("reconciliation anomaly: debit for record %d succeeded (tx %s) but the billing update failed: %s",
			record.Id, outcome.TransactionId, err.Error())
		rj.logger.Error(msg)
		rj.logEvent(record.Id, "anomaly", msg)
		summary.AddError(msg)
		return
	}

	summary.Paid++
	rj.logger.Infof("record %d paid, gateway transaction %s (rule %s)", record.Id, outcome.TransactionId, outcome.Rule)

	if err := rj.numberRepository.UpdateLastBilled(number.Id, now); err != nil {
		rj.recordError(record.Id, summary, fmt.Sprintf("could not update last billed date for number %d: %s", number.Id, err.Error()))
	}
}

func (rj *ReconciliationJob) finalizeFailed(record models.BillingRecord, number *models.PhoneNumber, outcome gateway.Outcome, summary *models.RunSummary) {
	if err := rj.billingRepository.MarkFailed(record.Id, outcome.ErrorText, rj.processedBy); err != nil {
		rj.recordError(record.Id, summary, err.Error())
		return
	}

	summary.Failed++
	rj.logger.Infof("record %d failed: %s (rule %s)", record.Id, outcome.ErrorText, outcome.Rule)

	if suspensionPattern.MatchString(outcome.ErrorText) {
		if err := rj.numberRepository.Suspend(number.Id); err != nil {
			rj.recordError(record.Id, summary, fmt.Sprintf("could not suspend number %d: %s", number.Id, err.Error()))
			return
		}
		rj.logger.Infof("number %d suspended after failed debit", number.Id)
	}
}

func (rj *ReconciliationJob) recordError(recordId int, summary *models.RunSummary, msg string) {
	full := fmt.Sprintf("record %d: %s", recordId, msg)
	rj.logger.Error(full)
	rj.logEvent(recordId, "error", full)
	summary.AddError(full)
}

// logEvent writes the audit row best-effort; a failing audit write
// must not change the outcome of the record
func (rj *ReconciliationJob) logEvent(recordId int, level string, message string) {
	if err := rj.billingRepository.LogEvent(recordId, level, message); err != nil {
		rj.logger.Error("could not write reconciliation log: " + err.Error())
	}
}
