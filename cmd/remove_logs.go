package cmd

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	utils "ovoky.com/billing/utils"
)

// remove any reconciliation logs older than retention period
func RemoveLogs() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}

	// 7 day retention
	cutoff := time.Now().AddDate(0, 0, -7)
	_, err = db.Exec("DELETE FROM reconciliation_logs WHERE created_at <= ?", cutoff)
	if err != nil {
		utils.Logger("remove_logs").Error("error occurred removing logs: " + err.Error())
		return err
	}
	return nil
}
