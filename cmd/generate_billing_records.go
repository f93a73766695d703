package cmd

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"ovoky.com/billing/internal/rates"
	models "ovoky.com/billing/models"
	"ovoky.com/billing/repository"
	utils "ovoky.com/billing/utils"
)

// RecordGeneratorJob creates the pending billing records the
// reconciler later collects: one monthly fee per assigned number per
// cycle, plus a one-shot setup fee at assignment time. Amounts come
// from the owner's active rate deck via longest-prefix resolution;
// numbers without a resolvable rate are skipped.
type RecordGeneratorJob struct {
	billingRepository  repository.BillingRepository
	numberRepository   repository.NumberRepository
	rateDeckRepository repository.RateDeckRepository
	logger             *logrus.Entry
	now                func() time.Time
}

func NewRecordGeneratorJob(
	billingRepository repository.BillingRepository,
	numberRepository repository.NumberRepository,
	rateDeckRepository repository.RateDeckRepository,
) *RecordGeneratorJob {
	return &RecordGeneratorJob{
		billingRepository:  billingRepository,
		numberRepository:   numberRepository,
		rateDeckRepository: rateDeckRepository,
		logger:             utils.Logger("record_generator"),
		now:                time.Now,
	}
}

// cron tab to create pending monthly fees for assigned numbers
func (rg *RecordGeneratorJob) GenerateMonthlyRecords() (int, error) {
	now := rg.now()
	numbers, err := rg.numberRepository.GetAssignedNumbers()
	if err != nil {
		return 0, errors.Wrap(err, "could not load assigned numbers")
	}

	created := 0
	for _, number := range numbers {
		row, ok := rg.resolveRate(number)
		if !ok {
			continue
		}

		pending, err := rg.billingRepository.HasPendingForCycle(number.Id, utils.CycleStart(now))
		if err != nil {
			rg.logger.Error(fmt.Sprintf("could not check pending records for number %d: %s", number.Id, err.Error()))
			continue
		}
		if pending {
			continue
		}

		record := &models.BillingRecord{
			NumberId:        number.Id,
			UserId:          number.UserId,
			Amount:          row.Rate,
			Currency:        models.DefaultCurrency,
			Status:          models.BillingStatusPending,
			TransactionType: models.TransactionMonthlyFee,
			BillingDate:     utils.NextBillingDate(now, number.BillingDayOfMonth),
		}
		if _, err := rg.billingRepository.CreateRecord(record); err != nil {
			rg.logger.Error(fmt.Sprintf("could not create monthly fee for number %d: %s", number.Id, err.Error()))
			continue
		}
		created++
	}

	rg.logger.Infof("created %d monthly fee records", created)
	return created, nil
}

// CreateSetupFeeRecord charges the deck's setup fee once, at
// assignment time, due immediately
func (rg *RecordGeneratorJob) CreateSetupFeeRecord(numberId int) error {
	number, err := rg.numberRepository.GetNumber(numberId)
	if err != nil {
		return errors.Wrapf(err, "could not load number %d", numberId)
	}

	row, ok := rg.resolveRate(*number)
	if !ok {
		return errors.Errorf("no rate for number %s, setup fee not created", number.Number)
	}
	if row.SetupFee <= 0 {
		return nil
	}

	record := &models.BillingRecord{
		NumberId:        number.Id,
		UserId:          number.UserId,
		Amount:          row.SetupFee,
		Currency:        models.DefaultCurrency,
		Status:          models.BillingStatusPending,
		TransactionType: models.TransactionSetupFee,
		BillingDate:     rg.now(),
	}
	_, err = rg.billingRepository.CreateRecord(record)
	return errors.Wrapf(err, "could not create setup fee for number %d", number.Id)
}

// resolveRate prices a number against its owner's active deck. A
// missing assignment or a rate miss excludes the number from billing.
func (rg *RecordGeneratorJob) resolveRate(number models.PhoneNumber) (*models.RateRow, bool) {
	assignment, err := rg.rateDeckRepository.GetActiveAssignment(number.UserId, models.DeckTypeNumber)
	if err != nil {
		rg.logger.Error(fmt.Sprintf("could not load deck assignment for user %d: %s", number.UserId, err.Error()))
		return nil, false
	}
	if assignment == nil {
		rg.logger.Warn(fmt.Sprintf("user %d has no active number deck, skipping number %s", number.UserId, number.Number))
		return nil, false
	}

	deck, err := rg.rateDeckRepository.GetDeck(assignment.DeckId)
	if err != nil {
		rg.logger.Error(fmt.Sprintf("could not load deck %d: %s", assignment.DeckId, err.Error()))
		return nil, false
	}

	rows, err := rg.rateDeckRepository.GetDeckRows(deck.Id)
	if err != nil {
		rg.logger.Error(fmt.Sprintf("could not load rows for deck %s: %s", deck.Name, err.Error()))
		return nil, false
	}

	row, ok := rates.ResolveForNumber(number, rows)
	if !ok {
		rg.logger.Warn(fmt.Sprintf("no rate for number %s in deck %s", number.Number, deck.Name))
		return nil, false
	}
	return row, true
}
