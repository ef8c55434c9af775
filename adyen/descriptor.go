package adyen

import (
	"strings"
	"time"

	"github.com/opendonate/donation-sdk/gateway"
)

// TransactionDonate is the single hosted-page transaction: it never leaves
// our server, the parameters are handed to the donor's browser as a form.
const TransactionDonate = "donate"

func allowedPaymentMethods() []string {
	return []string{"card"}
}

// varMap translates Adyen's request field names to canonical record fields.
func varMap() map[string]string {
	return map[string]string{
		"allowedMethods":                  "allowed_methods",
		"billingAddress.city":             "city",
		"billingAddress.country":          "country",
		"billingAddress.postalCode":       "zip",
		"billingAddressSig":               "billing_signature",
		"billingAddress.stateOrProvince":  "state",
		"billingAddress.street":           "street",
		"billingAddressType":              "billing_address_type",
		"blockedMethods":                  "blocked_methods",
		"currencyCode":                    "currency_code",
		"deliveryAddressType":             "delivery_address_type",
		"merchantAccount":                 "merchant_account",
		"merchantReference":               "order_id",
		"merchantReturnData":              "return_data",
		"merchantSig":                     "hpp_signature",
		"offset":                          "risk_score",
		"orderData":                       "order_data",
		"paymentAmount":                   "amount",
		"pspReference":                    "gateway_txn_id",
		"recurringContract":               "recurring_type",
		"sessionValidity":                 "session_expiration",
		"shipBeforeDate":                  "expiration",
		"shopperEmail":                    "email",
		"shopperLocale":                   "language",
		"shopperReference":                "customer_id",
		"shopperStatement":                "statement_template",
		"skinCode":                        "skin_code",
	}
}

// returnMap translates the narrower donor-return field set.
func returnMap() map[string]string {
	return map[string]string{
		"authResult":         "result",
		"merchantReference":  "order_id",
		"merchantReturnData": "return_data",
		"pspReference":       "gateway_txn_id",
		"skinCode":           "skin_code",
	}
}

func newMapping(conf *Config) (*gateway.Mapping, error) {
	donate := gateway.Transaction{
		Request: []string{
			"allowedMethods",
			"billingAddress.street",
			"billingAddress.city",
			"billingAddress.postalCode",
			"billingAddress.stateOrProvince",
			"billingAddress.country",
			"billingAddressSig",
			"billingAddressType",
			"currencyCode",
			"merchantAccount",
			"merchantReference",
			"merchantSig",
			"offset",
			"paymentAmount",
			"sessionValidity",
			"shipBeforeDate",
			"skinCode",
			"shopperLocale",
			"shopperEmail",
		},
		Values: map[string]string{
			"allowedMethods": strings.Join(allowedPaymentMethods(), ","),
			// 2 hides the billing UI fields on the hosted page.
			"billingAddressType": "2",
			"merchantAccount":    conf.MerchantAccount,
			"skinCode":           conf.SkinCode,
		},
		DerivedValues: map[string]func(now time.Time) string{
			"sessionValidity": func(now time.Time) string {
				return now.Add(conf.SessionValidity).Format(time.RFC3339)
			},
			"shipBeforeDate": func(now time.Time) string {
				return now.Add(conf.SessionValidity).Format("2006-Jan-02")
			},
		},
		Required: []string{
			"merchantAccount",
			"skinCode",
			"merchantSig",
			"paymentAmount",
			"currencyCode",
			"merchantReference",
		},
		Mode: gateway.ModeIframe,
	}

	return gateway.NewMapping(gateway.MappingConfig{
		VarMap:    varMap(),
		ReturnMap: returnMap(),
		Transactions: map[string]gateway.Transaction{
			TransactionDonate: donate,
		},
		StagedVars: map[string]gateway.Transform{
			"amount":     gateway.StageAmount,
			"street":     gateway.StageStreet,
			"zip":        gateway.StageZip,
			"risk_score": gateway.StageRiskScore,
		},
		RequestSignatures: []gateway.SignatureSpec{
			{
				Field: "billing_signature",
				Fields: []string{
					"street",
					"city",
					"zip",
					"state",
					"country",
				},
			},
			{
				Field: "hpp_signature",
				Fields: []string{
					"amount",
					"currency_code",
					"expiration",
					"order_id",
					"skin_code",
					"merchant_account",
					"session_expiration",
					"email",
					"customer_id",
					"recurring_type",
					"allowed_methods",
					"blocked_methods",
					"statement_template",
					"return_data",
					"billing_address_type",
					"delivery_address_type",
					"risk_score",
				},
			},
		},
		ResponseSignature: &gateway.ResponseSignatureSpec{
			SignatureField: "merchantSig",
			WireFields: []string{
				"authResult",
				"pspReference",
				"merchantReference",
				"skinCode",
				"merchantReturnData",
			},
		},
	})
}
