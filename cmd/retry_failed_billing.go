package cmd

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"ovoky.com/billing/repository"
	utils "ovoky.com/billing/utils"
)

// RetryFailedJob returns transient failures to the pending pool so the
// next reconciliation pass re-debits them. Balance failures are left
// alone: their number is suspended and an operator reinstates both.
type RetryFailedJob struct {
	billingRepository repository.BillingRepository
	logger            *logrus.Entry
	actor             string
}

func NewRetryFailedJob(billingRepository repository.BillingRepository, actor string) *RetryFailedJob {
	return &RetryFailedJob{
		billingRepository: billingRepository,
		logger:            utils.Logger("retry_failed_billing"),
		actor:             actor,
	}
}

// cron tab to re-queue failed billing records for another attempt
func (rf *RetryFailedJob) Run() (int, error) {
	records, err := rf.billingRepository.GetFailedRecords()
	if err != nil {
		return 0, errors.Wrap(err, "could not select failed billing records")
	}
	rf.logger.Infof("selected %d failed billing records", len(records))

	reset := 0
	for _, record := range records {
		if suspensionPattern.MatchString(record.FailureReason) {
			continue
		}
		if err := rf.billingRepository.ResetToPending(record.Id, rf.actor); err != nil {
			rf.logger.Error(fmt.Sprintf("could not reset record %d to pending: %s", record.Id, err.Error()))
			continue
		}
		reset++
	}

	rf.logger.Infof("returned %d failed records to pending", reset)
	return reset, nil
}
