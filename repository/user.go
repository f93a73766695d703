package repository

import (
	"database/sql"

	"github.com/pkg/errors"
)

// ErrNoGatewayAccount marks a user without a provisioned gateway
// account. The reconciler treats it as a configuration error: the
// record is skipped, not failed, and retried once an operator fixes
// the account.
var ErrNoGatewayAccount = errors.New("user has no gateway account")

type UserRepository interface {
	GetGatewayAccountId(userId int) (string, error)
}

type UserService struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return NewUserService(db)
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

func (us *UserService) GetGatewayAccountId(userId int) (string, error) {
	row := us.db.QueryRow("SELECT gateway_account_id FROM users WHERE id = ?", userId)
	var accountId sql.NullString
	err := row.Scan(&accountId)
	if err == sql.ErrNoRows {
		return "", ErrNoGatewayAccount
	}
	if err != nil {
		return "", errors.Wrapf(err, "could not get gateway account for user %d", userId)
	}
	if !accountId.Valid || accountId.String == "" {
		return "", ErrNoGatewayAccount
	}
	return accountId.String, nil
}
