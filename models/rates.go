package models

// Deck types
const (
	DeckTypeNumber = "number"
)

// RateDeck is a named pricing table assignable to users
type RateDeck struct {
	Id       int
	Name     string
	DeckType string
}

// RateRow prices numbers matching a prefix/country/type combination.
// An empty prefix acts as a catch-all default.
type RateRow struct {
	Id         int
	DeckId     int
	Prefix     string
	Country    string
	NumberType string
	Rate       float64
	SetupFee   float64
}

// RateDeckAssignment links a user to a deck. A user holds at most one
// active assignment per deck type at a time.
type RateDeckAssignment struct {
	Id       int
	UserId   int
	DeckId   int
	DeckType string
	IsActive bool
}
