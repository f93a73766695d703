package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"ovoky.com/billing/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var rdb *redis.Client

func main() {
	// 1. INITIALIZE REDIS
	redisURL := os.Getenv("REDIS_URL")
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Critical: Failed to parse REDIS_URL: %v", err)
	}
	rdb = redis.NewClient(opt)

	// Test Redis Connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Critical: Could not connect to Redis: %v", err)
	}

	// 2. SETUP SCHEDULER
	c := cron.New()

	// PRODUCTION: Daily reconciliation pass (02:30)
	_, _ = c.AddFunc("30 2 * * *", func() {
		log.Println("[PROD] Triggering billing reconciliation...")
		runReconcileDistributor("daily")
	})

	// DEBUG: Every Minute (only if DISTRIBUTOR_DEBUG is set to 1)
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			log.Println("[DEBUG] Running per-minute test trigger...")
			runReconcileDistributor("debug")
		})
	}

	log.Printf("Reconciliation Task Distributor started. Connected to Redis at: %s", opt.Addr)
	c.Start()

	// Keep the app running
	select {}
}

// runReconcileDistributor queues exactly one reconciliation run per
// schedule window. The redis lock is the system's single-flight
// guarantee: the reconciler itself does not prevent overlapping runs.
func runReconcileDistributor(scheduleType string) {
	// 2-hour safety timeout for the entire process
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	// --- GLOBAL LOCK LOGIC ---
	var lockKeySuffix string
	var lockTTL time.Duration

	if scheduleType == "debug" {
		lockKeySuffix = time.Now().Format("2006-01-02-15:04") // Unique per minute
		lockTTL = 50 * time.Second                            // Expire just before next minute
	} else {
		lockKeySuffix = time.Now().Format("2006-01-02")
		lockTTL = 23 * time.Hour
	}

	globalLockKey := fmt.Sprintf("reconcile_run_lock:%s:%s", scheduleType, lockKeySuffix)

	// SET NX: Only one instance/replica will succeed here
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		log.Printf("[%s] Skip: Lock %s held by another instance.", scheduleType, globalLockKey)
		return
	}

	log.Printf("[%s] Lock Acquired. Queueing reconciliation run...", scheduleType)

	// --- CONNECTIONS ---
	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		log.Printf("[%s] RabbitMQ connection failed: %v", scheduleType, err)
		return
	}
	defer conn.Close()

	ch, _ := conn.Channel()
	defer ch.Close()

	// Put channel in Confirm Mode
	if err := ch.Confirm(false); err != nil {
		log.Printf("[%s] Could not enable RabbitMQ confirms: %v", scheduleType, err)
		return
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, _ := ch.QueueDeclare("reconcile_tasks", true, false, false, false, nil)

	task := models.ReconcileTask{
		RunID:       globalLockKey,
		TriggeredBy: "scheduler",
	}
	body, _ := json.Marshal(task)

	err = ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		rdb.Del(ctx, globalLockKey) // Failed to publish, allow retry
		log.Printf("[%s] Publish error: %v", scheduleType, err)
		return
	}

	// Confirm receipt by RabbitMQ
	select {
	case confirmed := <-confirms:
		if !confirmed.Ack {
			rdb.Del(ctx, globalLockKey)
			log.Printf("[%s] RabbitMQ NACK for run %s", scheduleType, task.RunID)
			return
		}
	case <-time.After(5 * time.Second):
		rdb.Del(ctx, globalLockKey)
		log.Printf("[%s] Timeout waiting for RabbitMQ ACK", scheduleType)
		return
	}

	log.Printf("[%s] Reconciliation run %s queued.", scheduleType, task.RunID)
}
