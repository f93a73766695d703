package main

import (
	"log"
	"os"
	"time"

	cmd "ovoky.com/billing/cmd"
	gateway "ovoky.com/billing/handlers/gateway"
	"ovoky.com/billing/models"
	"ovoky.com/billing/repository"
	"ovoky.com/billing/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	utils.InitLogger(utils.Config("LOG_DESTINATIONS"))

	db, err := utils.GetDBConnection()
	if err != nil {
		panic(err)
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

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}

	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures a single run is in flight at a time
	if err := ch.Qos(1, 0, false); err != nil {
		panic(err)
	}
	msgs, err := ch.Consume("reconcile_tasks", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Worker ready. Waiting for reconciliation tasks...")

	for d := range msgs {
		task, err := models.ParseReconcileTask(d.Body)
		if err != nil {
			log.Printf("Discarding bad task payload: %v", err)
			d.Nack(false, false) // Do not requeue, the payload will never decode
			continue
		}

		job := cmd.NewReconciliationJob(
			repository.NewBillingRepository(db),
			repository.NewNumberRepository(db),
			repository.NewUserRepository(db),
			handler,
			task.RunID,
		)

		summary, err := job.Run()
		if err != nil {
			log.Printf("Error running reconciliation %s: %v", task.RunID, err)
			d.Nack(false, true) // Requeue for retry
			continue
		}
		log.Printf("Run %s: processed=%d paid=%d failed=%d skipped=%d errors=%d",
			task.RunID, summary.Processed, summary.Paid, summary.Failed, summary.Skipped, summary.ErrorCount)
		d.Ack(false)
	}
}
