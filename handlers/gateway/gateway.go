package gateway

// DebitResult is the heterogeneous field set a gateway debit may
// return. Shapes vary across gateway versions; Classify is the
// compatibility contract over them.
type DebitResult map[string]interface{}

type GatewayHandler interface {
	Debit(accountId string, amount float64, currency string, note string) (DebitResult, error)
}
