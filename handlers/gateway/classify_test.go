package gateway

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("Should accept every success-like result code", func(t *testing.T) {
		t.Parallel()

		for _, code := range []interface{}{"success", "1", 1, "OK", "ok"} {
			outcome := Classify(DebitResult{"result": code})
			assert.True(t, outcome.Success, fmt.Sprintf("result %v should classify as success", code))
			assert.Equal(t, "result-code", outcome.Rule)
		}
	})

	t.Run("Should accept tx_result of 1", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"tx_result": 1})
		assert.True(t, outcome.Success)
		assert.Equal(t, "tx-result", outcome.Rule)

		outcome = Classify(DebitResult{"tx_result": "1"})
		assert.True(t, outcome.Success)
	})

	t.Run("Should accept a transaction id without error text", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"tx_id": "tx123"})
		assert.True(t, outcome.Success)
		assert.Equal(t, "transaction-id", outcome.Rule)
		assert.Equal(t, "tx123", outcome.TransactionId)
	})

	t.Run("Should reject an explicit failure without a transaction id", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{"failed", "error"} {
			outcome := Classify(DebitResult{"result": code})
			assert.False(t, outcome.Success)
			assert.Equal(t, "explicit-failure", outcome.Rule)
		}
	})

	t.Run("Should reject on error text and carry it as the reason", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"error": "Account blocked"})
		assert.False(t, outcome.Success)
		assert.Equal(t, "error-text", outcome.Rule)
		assert.Equal(t, "Account blocked", outcome.ErrorText)

		outcome = Classify(DebitResult{"tx_error": "Balance too low"})
		assert.False(t, outcome.Success)
		assert.Equal(t, "Balance too low", outcome.ErrorText)
	})

	t.Run("Should default the failure reason to insufficient funds", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"result": "failed"})
		assert.False(t, outcome.Success)
		assert.Equal(t, "Insufficient funds", outcome.ErrorText)
	})

	t.Run("Should treat an unrecognized non-error shape as success", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"result": "completed"})
		assert.True(t, outcome.Success)
		assert.Equal(t, "lenient-default", outcome.Rule)
	})

	t.Run("Should synthesize a transaction id when the gateway omits one", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"result": "success"})
		assert.True(t, outcome.Success)
		assert.True(t, strings.HasPrefix(outcome.TransactionId, "debit_"))
	})

	t.Run("Should prefer tx_id over payment_id and i_payment", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{
			"result":     "success",
			"tx_id":      "tx1",
			"payment_id": "pay2",
			"i_payment":  33,
		})
		assert.Equal(t, "tx1", outcome.TransactionId)

		outcome = Classify(DebitResult{"result": "success", "i_payment": 33})
		assert.Equal(t, "33", outcome.TransactionId)
	})

	t.Run("Should classify results decoded from the wire as ints", func(t *testing.T) {
		t.Parallel()

		outcome := Classify(DebitResult{"result": 1})
		assert.True(t, outcome.Success)
		assert.Equal(t, "result-code", outcome.Rule)
	})
}
