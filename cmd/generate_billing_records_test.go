package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"ovoky.com/billing/mocks"
	"ovoky.com/billing/models"
)

func testDeck() *models.RateDeck {
	return &models.RateDeck{Id: 7, Name: "standard-us", DeckType: models.DeckTypeNumber}
}

func testDeckRows() []models.RateRow {
	return []models.RateRow{
		{Id: 1, DeckId: 7, Prefix: "1", Country: "US", NumberType: "Mobile", Rate: 5, SetupFee: 2},
		{Id: 2, DeckId: 7, Prefix: "1212", Country: "US", NumberType: "Mobile", Rate: 8, SetupFee: 3},
	}
}

func TestGenerateMonthlyRecords(t *testing.T) {
	t.Parallel()

	t.Run("Should create a pending monthly fee priced by the longest prefix", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		number := *testAssignedNumber()
		number.BillingDayOfMonth = 15

		mockNumbers.EXPECT().GetAssignedNumbers().Return([]models.PhoneNumber{number}, nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).
			Return(&models.RateDeckAssignment{Id: 3, UserId: 101, DeckId: 7, DeckType: models.DeckTypeNumber, IsActive: true}, nil)
		mockDecks.EXPECT().GetDeck(7).Return(testDeck(), nil)
		mockDecks.EXPECT().GetDeckRows(7).Return(testDeckRows(), nil)
		mockBilling.EXPECT().HasPendingForCycle(5, mock.Anything).Return(false, nil)
		mockBilling.EXPECT().CreateRecord(mock.MatchedBy(func(record *models.BillingRecord) bool {
			return record.NumberId == 5 &&
				record.Amount == 8 &&
				record.Status == models.BillingStatusPending &&
				record.TransactionType == models.TransactionMonthlyFee &&
				record.BillingDate.Day() == 15
		})).Return(42, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		created, err := job.GenerateMonthlyRecords()
		assert.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("Should skip a number that already has a pending record for the cycle", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		mockNumbers.EXPECT().GetAssignedNumbers().Return([]models.PhoneNumber{*testAssignedNumber()}, nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).
			Return(&models.RateDeckAssignment{Id: 3, UserId: 101, DeckId: 7, DeckType: models.DeckTypeNumber, IsActive: true}, nil)
		mockDecks.EXPECT().GetDeck(7).Return(testDeck(), nil)
		mockDecks.EXPECT().GetDeckRows(7).Return(testDeckRows(), nil)
		mockBilling.EXPECT().HasPendingForCycle(5, mock.Anything).Return(true, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		created, err := job.GenerateMonthlyRecords()
		assert.NoError(t, err)
		assert.Equal(t, 0, created)

		mockBilling.AssertNotCalled(t, "CreateRecord", mock.Anything)
	})

	t.Run("Should skip a number whose owner has no active deck", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		mockNumbers.EXPECT().GetAssignedNumbers().Return([]models.PhoneNumber{*testAssignedNumber()}, nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).Return(nil, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		created, err := job.GenerateMonthlyRecords()
		assert.NoError(t, err)
		assert.Equal(t, 0, created)

		mockBilling.AssertNotCalled(t, "CreateRecord", mock.Anything)
	})

	t.Run("Should skip a number with no matching rate row", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		number := *testAssignedNumber()
		number.Number = "4915112345678"
		number.Country = "DE"

		mockNumbers.EXPECT().GetAssignedNumbers().Return([]models.PhoneNumber{number}, nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).
			Return(&models.RateDeckAssignment{Id: 3, UserId: 101, DeckId: 7, DeckType: models.DeckTypeNumber, IsActive: true}, nil)
		mockDecks.EXPECT().GetDeck(7).Return(testDeck(), nil)
		mockDecks.EXPECT().GetDeckRows(7).Return(testDeckRows(), nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		created, err := job.GenerateMonthlyRecords()
		assert.NoError(t, err)
		assert.Equal(t, 0, created)

		mockBilling.AssertNotCalled(t, "CreateRecord", mock.Anything)
	})

	t.Run("Should abort when assigned numbers cannot be loaded", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		mockNumbers.EXPECT().GetAssignedNumbers().Return(nil, errors.New("db unreachable"))

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		_, err := job.GenerateMonthlyRecords()
		assert.Error(t, err)
	})
}

func TestCreateSetupFeeRecord(t *testing.T) {
	t.Parallel()

	t.Run("Should create a setup fee due immediately", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).
			Return(&models.RateDeckAssignment{Id: 3, UserId: 101, DeckId: 7, DeckType: models.DeckTypeNumber, IsActive: true}, nil)
		mockDecks.EXPECT().GetDeck(7).Return(testDeck(), nil)
		mockDecks.EXPECT().GetDeckRows(7).Return(testDeckRows(), nil)
		mockBilling.EXPECT().CreateRecord(mock.MatchedBy(func(record *models.BillingRecord) bool {
			return record.Amount == 3 && record.TransactionType == models.TransactionSetupFee
		})).Return(43, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		assert.NoError(t, job.CreateSetupFeeRecord(5))
	})

	t.Run("Should not create a record when the deck has no setup fee", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		rows := testDeckRows()
		rows[1].SetupFee = 0

		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).
			Return(&models.RateDeckAssignment{Id: 3, UserId: 101, DeckId: 7, DeckType: models.DeckTypeNumber, IsActive: true}, nil)
		mockDecks.EXPECT().GetDeck(7).Return(testDeck(), nil)
		mockDecks.EXPECT().GetDeckRows(7).Return(rows, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		assert.NoError(t, job.CreateSetupFeeRecord(5))

		mockBilling.AssertNotCalled(t, "CreateRecord", mock.Anything)
	})

	t.Run("Should fail when no rate resolves for the number", func(t *testing.T) {
		t.Parallel()

		mockBilling := &mocks.BillingRepository{}
		mockNumbers := &mocks.NumberRepository{}
		mockDecks := &mocks.RateDeckRepository{}

		mockNumbers.EXPECT().GetNumber(5).Return(testAssignedNumber(), nil)
		mockDecks.EXPECT().GetActiveAssignment(101, models.DeckTypeNumber).Return(nil, nil)

		job := NewRecordGeneratorJob(mockBilling, mockNumbers, mockDecks)
		assert.Error(t, job.CreateSetupFeeRecord(5))
	})
}
