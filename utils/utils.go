package utils

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var db *sql.DB

// Config reads a configuration key, loading .env first unless disabled
func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// InitLogger configures the process-wide logrus destination from a
// comma-separated list ("stdout", "file")
func InitLogger(destinations string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	for _, dest := range strings.Split(destinations, ",") {
		if strings.TrimSpace(dest) == "file" {
			f, err := os.OpenFile("billing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				logrus.WithError(err).Error("could not open log file, keeping stdout")
				continue
			}
			logrus.SetOutput(f)
		}
	}
}

// Logger returns a component-tagged log entry
func Logger(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// GetDBConnection returns the shared MySQL connection, creating it on
// first use from DB_USER/DB_PASS/DB_HOST/DB_NAME
func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		Config("DB_USER"), Config("DB_PASS"), Config("DB_HOST"), Config("DB_NAME"))
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "could not open database connection")
	}
	db = conn
	return db, nil
}

// maxBillingDay caps billing days to avoid month-length overflow
const maxBillingDay = 28

// NextBillingDate computes the next charge date for a billing day of
// month. Days past 28 are capped at 28.
func NextBillingDate(now time.Time, billingDay int) time.Time {
	if billingDay < 1 {
		billingDay = 1
	}
	if billingDay > maxBillingDay {
		billingDay = maxBillingDay
	}
	year, month, _ := now.Date()
	if now.Day() < billingDay {
		return time.Date(year, month, billingDay, 0, 0, 0, 0, now.Location())
	}
	return time.Date(year, month+1, billingDay, 0, 0, 0, 0, now.Location())
}

// CycleStart returns the first instant of the month containing t,
// used to deduplicate one record per assignment per cycle
func CycleStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// PaymentNote builds the gateway debit note for a billing record
func PaymentNote(transactionType string, number string) string {
	return fmt.Sprintf("%s for number %s", transactionType, number)
}
