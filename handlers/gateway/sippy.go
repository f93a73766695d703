package gateway

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"ovoky.com/billing/internal/xmlrpc"
)

// SippyGatewayHandler debits prepaid accounts on a Sippy-style
// XML-RPC gateway. Calls are synchronous with a bounded timeout; a
// timeout surfaces as the call's error and affects only the record
// being processed.
type SippyGatewayHandler struct {
	URL      string
	Username string
	Password string
	client   *http.Client
}

func NewSippyGatewayHandler(url string, username string, password string, timeout time.Duration) *SippyGatewayHandler {
	return &SippyGatewayHandler{
		URL:      url,
		Username: username,
		Password: password,
		client:   &http.Client{Timeout: timeout},
	}
}

func (hndl *SippyGatewayHandler) Debit(accountId string, amount float64, currency string, note string) (DebitResult, error) {
	body := xmlrpc.EncodeRequest("accountDebit", map[string]interface{}{
		"i_account":     accountId,
		"amount":        amount,
		"currency":      currency,
		"payment_notes": note,
	})

	req, err := http.NewRequest("POST", hndl.URL, strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "could not build debit request")
	}
	req.Header.Set("Content-Type", "text/xml")
	req.SetBasicAuth(hndl.Username, hndl.Password)

	resp, err := hndl.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "debit call failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read debit response")
	}

	decoded, err := xmlrpc.DecodeResponse(string(raw))
	if err != nil {
		// *xmlrpc.Fault propagates unchanged, it aborts this call only
		return nil, err
	}
	if decoded.Value().Kind != xmlrpc.KindStruct {
		// a scalar response would classify as an empty success shape
		return nil, errors.New("gateway returned a non-struct debit response")
	}
	return DebitResult(decoded.Fields()), nil
}
