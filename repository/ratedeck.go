package repository

import (
	"database/sql"

	"github.com/pkg/errors"
	"ovoky.com/billing/models"
)

type RateDeckRepository interface {
	GetActiveAssignment(userId int, deckType string) (*models.RateDeckAssignment, error)
	GetDeck(deckId int) (*models.RateDeck, error)
	GetDeckRows(deckId int) ([]models.RateRow, error)
}

type RateDeckService struct {
	db *sql.DB
}

func NewRateDeckRepository(db *sql.DB) RateDeckRepository {
	return NewRateDeckService(db)
}

func NewRateDeckService(db *sql.DB) *RateDeckService {
	return &RateDeckService{db: db}
}

// GetActiveAssignment returns the user's single active assignment for
// a deck type, or nil when none exists
func (rs *RateDeckService) GetActiveAssignment(userId int, deckType string) (*models.RateDeckAssignment, error) {
	row := rs.db.QueryRow(`SELECT id, user_id, deck_id, deck_type, is_active
	FROM rate_deck_assignments WHERE user_id = ? AND deck_type = ? AND is_active = 1 LIMIT 1`, userId, deckType)

	var assignment models.RateDeckAssignment
	err := row.Scan(&assignment.Id, &assignment.UserId, &assignment.DeckId, &assignment.DeckType, &assignment.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not get deck assignment for user %d", userId)
	}
	return &assignment, nil
}

func (rs *RateDeckService) GetDeck(deckId int) (*models.RateDeck, error) {
	row := rs.db.QueryRow("SELECT id, name, deck_type FROM rate_decks WHERE id = ?", deckId)

	var deck models.RateDeck
	err := row.Scan(&deck.Id, &deck.Name, &deck.DeckType)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get rate deck %d", deckId)
	}
	return &deck, nil
}

// GetDeckRows loads a deck's rows ordered by id so longest-prefix ties
// resolve on storage order
func (rs *RateDeckService) GetDeckRows(deckId int) ([]models.RateRow, error) {
	results, err := rs.db.Query(`SELECT id, deck_id, prefix, country, number_type, rate, setup_fee
	FROM rate_deck_rows WHERE deck_id = ? ORDER BY id`, deckId)
	if err != nil {
		return nil, errors.Wrapf(err, "could not query rows for deck %d", deckId)
	}
	defer results.Close()

	rows := []models.RateRow{}
	for results.Next() {
		var row models.RateRow
		err = results.Scan(&row.Id, &row.DeckId, &row.Prefix, &row.Country, &row.NumberType, &row.Rate, &row.SetupFee)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan rate row")
		}
		rows = append(rows, row)
	}
	return rows, results.Err()
}
