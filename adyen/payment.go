package adyen

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/opendonate/donation-sdk/donation"
	"github.com/opendonate/donation-sdk/gateway"
)

// HostedPaymentForm is the browser-side payload: post Fields to Action and
// Adyen renders the hosted payment page.
type HostedPaymentForm struct {
	Method string
	Action string
	Fields url.Values
}

// MakeHostedPaymentForm validates the record and stages it into the signed
// donate parameter set. A record that fails validation never reaches the
// processor; the donor gets the generic retry message.
func (cli *Client) MakeHostedPaymentForm(_ context.Context, rec *donation.Record, now time.Time) (*HostedPaymentForm, error) {
	if errs := rec.ValidationErrors(false); !errs.OK() {
		cli.log.Info("hosted payment blocked by validation", zap.Int("error_count", len(errs)))
		return nil, gateway.NewPaymentError("internal-0000")
	}

	params, err := cli.mapping.Stage(rec.Data(), TransactionDonate, cli.signer, now)
	if err != nil {
		return nil, err
	}

	fields := url.Values{}
	for _, key := range params.Order {
		fields.Set(key, params.Values[key])
	}
	return &HostedPaymentForm{
		Method: "POST",
		Action: gateway.FormTarget(cli.env.baseURL(), _HPP_PATH),
		Fields: fields,
	}, nil
}

type PaymentStatus int

const (
	StatusFailed PaymentStatus = iota
	// StatusPendingAuthorization covers both PENDING and AUTHORISED donor
	// returns: the charge is only final once the capture goes through, so
	// both wait in the pending queue.
	StatusPendingAuthorization
)

// PaymentResult is the authenticated outcome of a donor return.
type PaymentResult struct {
	Status       PaymentStatus
	GatewayTxnID string
	OrderID      string
	// Data holds the unstaged canonical response fields, ready for
	// Record.AddResponseData.
	Data map[string]string
}

// ProcessResponse authenticates and interprets the query string Adyen
// appends when sending the donor back. An unverifiable signature rejects
// the response no matter what it claims.
func (cli *Client) ProcessResponse(query url.Values) (*PaymentResult, error) {
	wire := make(map[string]string, len(query))
	for key := range query {
		wire[key] = query.Get(key)
	}
	if wire["authResult"] == "" {
		return nil, gateway.ErrNoResponse
	}

	if err := cli.mapping.VerifyResponse(wire, cli.signer); err != nil {
		cli.log.Error("donor return failed signature check",
			zap.String("order_id", wire["merchantReference"]),
			zap.Error(err),
		)
		return nil, err
	}

	result := &PaymentResult{
		GatewayTxnID: wire["pspReference"],
		OrderID:      wire["merchantReference"],
		Data:         cli.mapping.Unstage(wire),
	}
	switch wire["authResult"] {
	case "PENDING", "AUTHORISED":
		result.Status = StatusPendingAuthorization
	default:
		cli.log.Info("negative donor return",
			zap.String("order_id", result.OrderID),
			zap.String("auth_result", wire["authResult"]),
		)
		result.Status = StatusFailed
	}
	return result, nil
}

// ReturnMap exposes the response key map for Record.AddResponseData.
func (cli *Client) ReturnMap() map[string]string {
	return cli.mapping.ReturnMap()
}
