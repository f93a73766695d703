package gateway

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the classified result of one debit attempt
type Outcome struct {
	Success       bool
	Rule          string
	TransactionId string
	ErrorText     string
}

// ClassifyRule is one ordered predicate over a debit result. Rules are
// evaluated first-match-wins so a new gateway response shape can be
// audited rule by rule.
type ClassifyRule struct {
	Name    string
	Applies func(DebitResult) bool
	Success bool
}

// defaultFailureReason is used when the gateway reports failure
// without any error text
const defaultFailureReason = "Insufficient funds"

var successResultCodes = map[string]bool{
	"success": true,
	"1":       true,
	"ok":      true,
}

// ClassifyRules is the ordered compatibility contract over every
// gateway response shape seen in production. The trailing lenient
// default deliberately treats unrecognized non-error shapes as
// success.
var ClassifyRules = []ClassifyRule{
	{
		Name: "result-code",
		Applies: func(res DebitResult) bool {
			code, ok := resultCode(res)
			return ok && successResultCodes[strings.ToLower(code)]
		},
		Success: true,
	},
	{
		Name: "tx-result",
		Applies: func(res DebitResult) bool {
			switch v := res["tx_result"].(type) {
			case int:
				return v == 1
			case float64:
				return v == 1
			case string:
				return v == "1"
			}
			return false
		},
		Success: true,
	},
	{
		Name: "transaction-id",
		Applies: func(res DebitResult) bool {
			return transactionId(res) != "" && errorText(res) == ""
		},
		Success: true,
	},
	{
		Name: "explicit-failure",
		Applies: func(res DebitResult) bool {
			code, ok := resultCode(res)
			if !ok {
				return false
			}
			lowered := strings.ToLower(code)
			return lowered == "failed" || lowered == "error"
		},
		Success: false,
	},
	{
		Name: "error-text",
		Applies: func(res DebitResult) bool {
			return errorText(res) != ""
		},
		Success: false,
	},
	{
		Name:    "lenient-default",
		Applies: func(DebitResult) bool { return true },
		Success: true,
	},
}

// Classify runs the ordered rule list over a debit result. On success
// the transaction id falls back to a synthetic debit_<timestamp> when
// the gateway returned none; on failure the error text defaults to
// insufficient funds.
func Classify(res DebitResult) Outcome {
	for _, rule := range ClassifyRules {
		if !rule.Applies(res) {
			continue
		}
		outcome := Outcome{Success: rule.Success, Rule: rule.Name}
		if rule.Success {
			outcome.TransactionId = transactionId(res)
			if outcome.TransactionId == "" {
				outcome.TransactionId = fmt.Sprintf("debit_%d", time.Now().Unix())
			}
		} else {
			outcome.ErrorText = errorText(res)
			if outcome.ErrorText == "" {
				outcome.ErrorText = defaultFailureReason
			}
		}
		return outcome
	}
	// unreachable, the lenient default always applies
	return Outcome{}
}

// resultCode normalizes the scalar result field to a string
func resultCode(res DebitResult) (string, bool) {
	switch v := res["result"].(type) {
	case string:
		return v, true
	case int:
		return fmt.Sprintf("%d", v), true
	case float64:
		return fmt.Sprintf("%d", int(v)), true
	}
	return "", false
}

// transactionId returns the first present gateway transaction
// identifier
func transactionId(res DebitResult) string {
	for _, field := range []string{"tx_id", "payment_id", "i_payment"} {
		switch v := res[field].(type) {
		case string:
			if v != "" {
				return v
			}
		case int:
			return fmt.Sprintf("%d", v)
		case float64:
			return fmt.Sprintf("%d", int(v))
		}
	}
	return ""
}

func errorText(res DebitResult) string {
	for _, field := range []string{"error", "tx_error"} {
		if v, ok := res[field].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
