package main

import (
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	cmd "ovoky.com/billing/cmd"
	gateway "ovoky.com/billing/handlers/gateway"
	"ovoky.com/billing/repository"
	"ovoky.com/billing/utils"
)

func main() {
	var err error

	utils.InitLogger(utils.Config("LOG_DESTINATIONS"))
	logger := utils.Logger("main")

	args := os.Args[1:]
	if len(args) == 0 {
		logger.Info("Please provide command")
		return
	}
	command := args[0]
	switch command {
	case "reconcile_billing":
		logger.Info("running billing reconciliation")

		job, buildErr := buildReconciliationJob("manual")
		if buildErr != nil {
			logger.Error(buildErr.Error())
			return
		}
		summary, runErr := job.Run()
		if runErr != nil {
			logger.Error(runErr.Error())
			return
		}
		logger.WithFields(logrus.Fields{
			"processed": summary.Processed,
			"paid":      summary.Paid,
			"failed":    summary.Failed,
			"skipped":   summary.Skipped,
			"errors":    summary.ErrorCount,
		}).Info("reconciliation summary")
		for _, msg := range summary.Errors {
			logger.Warn(msg)
		}
	case "generate_billing_records":
		logger.Info("generating pending billing records")

		db, dbErr := utils.GetDBConnection()
		if dbErr != nil {
			logger.Error(dbErr.Error())
			return
		}
		job := cmd.NewRecordGeneratorJob(
			repository.NewBillingRepository(db),
			repository.NewNumberRepository(db),
			repository.NewRateDeckRepository(db),
		)
		_, err = job.GenerateMonthlyRecords()
		if err != nil {
			logger.Error(err.Error())
		}
	case "retry_failed_billing":
		logger.Info("re-queueing failed billing records")

		db, dbErr := utils.GetDBConnection()
		if dbErr != nil {
			logger.Error(dbErr.Error())
			return
		}
		job := cmd.NewRetryFailedJob(repository.NewBillingRepository(db), "retry_failed_billing")
		reset, retryErr := job.Run()
		if retryErr != nil {
			logger.Error(retryErr.Error())
			return
		}
		logger.Infof("%d records returned to pending", reset)
	case "cleanup_reservations":
		logger.Info("releasing expired number reservations")
		err = cmd.CleanupReservations()
		if err != nil {
			logger.Error(err.Error())
		}
	case "remove_logs":
		logger.Info("removing old reconciliation logs")
		err = cmd.RemoveLogs()
		if err != nil {
			logger.Error(err.Error())
		}
	default:
		logger.Info("unknown command: " + command)
	}
}

func buildReconciliationJob(processedBy string) (*cmd.ReconciliationJob, error) {
	db, err := utils.GetDBConnection()
	if err != nil {
		return nil, err
	}

	timeout := 30 * time.Second
	if secs := utils.Config("GATEWAY_TIMEOUT_SECS"); secs != "" {
		if parsed, parseErr := time.ParseDuration(secs + "s"); parseErr == nil {
			timeout = parsed
		}
	}
	handler := gateway.NewSippyGatewayHandler(
		utils.Config("GATEWAY_URL"),
		utils.Config("GATEWAY_USER"),
		utils.Config("GATEWAY_PASS"),
		timeout,
	)

	return cmd.NewReconciliationJob(
		repository.NewBillingRepository(db),
		repository.NewNumberRepository(db),
		repository.NewUserRepository(db),
		handler,
		processedBy,
	), nil
}
