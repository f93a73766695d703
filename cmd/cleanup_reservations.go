package cmd

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"ovoky.com/billing/repository"
	utils "ovoky.com/billing/utils"
)

// reservations expire after 3 days
const reservationTTLDays = 3

// cron tab to release phone number reservations that were never
// purchased
func CleanupReservations() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}
	numberRepository := repository.NewNumberRepository(db)

	cutoff := time.Now().AddDate(0, 0, -reservationTTLDays)
	released, err := numberRepository.ReleaseExpiredReservations(cutoff)
	if err != nil {
		return err
	}
	utils.Logger("cleanup_reservations").Info(fmt.Sprintf("released %d expired reservations", released))
	return nil
}
