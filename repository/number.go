package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"ovoky.com/billing/models"
)

type NumberRepository interface {
	GetNumber(id int) (*models.PhoneNumber, error)
	GetAssignedNumbers() ([]models.PhoneNumber, error)
	Suspend(id int) error
	UpdateLastBilled(id int, billedAt time.Time) error
	ReleaseExpiredReservations(cutoff time.Time) (int, error)
}

type NumberService struct {
	db *sql.DB
}

func NewNumberRepository(db *sql.DB) NumberRepository {
	return NewNumberService(db)
}

func NewNumberService(db *sql.DB) *NumberService {
	return &NumberService{db: db}
}

const numberColumns = "id, user_id, number, country, number_type, status, billing_day_of_month, last_billed_date, reserved_at"

func (ns *NumberService) GetNumber(id int) (*models.PhoneNumber, error) {
	row := ns.db.QueryRow("SELECT "+numberColumns+" FROM phone_numbers WHERE id = ?", id)
	number, err := scanNumber(row)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get phone number %d", id)
	}
	return number, nil
}

func (ns *NumberService) GetAssignedNumbers() ([]models.PhoneNumber, error) {
	results, err := ns.db.Query("SELECT " + numberColumns + " FROM phone_numbers WHERE status = 'assigned' ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "could not query assigned numbers")
	}
	defer results.Close()

	numbers := []models.PhoneNumber{}
	for results.Next() {
		number, err := scanNumber(results)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan phone number")
		}
		numbers = append(numbers, *number)
	}
	return numbers, results.Err()
}

// Suspend only acts on assigned numbers, so a crash-and-resume pass
// cannot double-suspend or touch cancelled numbers
func (ns *NumberService) Suspend(id int) error {
	stmt, err := ns.db.Prepare("UPDATE phone_numbers SET status = 'suspended', updated_at = ? WHERE id = ? AND status = 'assigned'")
	if err != nil {
		return errors.Wrap(err, "could not prepare suspend update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(time.Now(), id)
	return errors.Wrapf(err, "could not suspend number %d", id)
}

func (ns *NumberService) UpdateLastBilled(id int, billedAt time.Time) error {
	stmt, err := ns.db.Prepare("UPDATE phone_numbers SET last_billed_date = ?, updated_at = ? WHERE id = ?")
	if err != nil {
		return errors.Wrap(err, "could not prepare last billed update")
	}
	defer stmt.Close()

	_, err = stmt.Exec(billedAt, time.Now(), id)
	return errors.Wrapf(err, "could not update last billed date for number %d", id)
}

// ReleaseExpiredReservations reverts stale reservations to available
func (ns *NumberService) ReleaseExpiredReservations(cutoff time.Time) (int, error) {
	res, err := ns.db.Exec("UPDATE phone_numbers SET status = 'available', reserved_at = NULL, updated_at = ? WHERE status = 'reserved' AND reserved_at <= ?", time.Now(), cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "could not release reservations")
	}
	released, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "could not count released reservations")
	}
	return int(released), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNumber(row rowScanner) (*models.PhoneNumber, error) {
	var number models.PhoneNumber
	var lastBilled sql.NullTime
	var reservedAt sql.NullTime
	err := row.Scan(&number.Id, &number.UserId, &number.Number, &number.Country, &number.NumberType,
		&number.Status, &number.BillingDayOfMonth, &lastBilled, &reservedAt)
	if err != nil {
		return nil, err
	}
	if lastBilled.Valid {
		number.LastBilledDate = &lastBilled.Time
	}
	if reservedAt.Valid {
		number.ReservedAt = &reservedAt.Time
	}
	return &number, nil
}
