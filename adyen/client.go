// Package adyen drives Adyen's Hosted Payment Pages: the donor's browser
// carries a signed parameter set to the hosted form, and Adyen sends the
// donor back with a signed result. There is no server-to-server leg.
package adyen

import (
	"crypto/sha1"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/opendonate/donation-sdk/config"
	"github.com/opendonate/donation-sdk/gateway"
	"github.com/opendonate/donation-sdk/validate"
)

// Identifier is the canonical gateway id carried in record data.
const Identifier = "adyen"

var (
	_DEV_ENDPOINT, _  = url.Parse("https://test.adyen.com")
	_PROD_ENDPOINT, _ = url.Parse("https://live.adyen.com")
)

const _HPP_PATH = "/hpp/pay.shtml"

type Env int

const (
	Env_DEV Env = iota
	Env_PROD
)

func (e Env) baseURL() *url.URL {
	switch e {
	case Env_DEV:
		return _DEV_ENDPOINT
	case Env_PROD:
		return _PROD_ENDPOINT
	default:
		return _DEV_ENDPOINT
	}
}

type Config struct {
	MerchantAccount string
	SkinCode        string
	SharedSecret    string

	// SessionValidity bounds how long the hosted page stays payable.
	// Defaults to 48 hours.
	SessionValidity time.Duration

	PriceFloorUSD   decimal.Decimal
	PriceCeilingUSD decimal.Decimal

	Logger *zap.Logger
}

type Client struct {
	env     Env
	conf    *Config
	mapping *gateway.Mapping
	signer  gateway.Signer
	log     *zap.Logger
}

func NewClient(env Env, conf Config) (*Client, error) {
	if conf.SessionValidity == 0 {
		conf.SessionValidity = 48 * time.Hour
	}
	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}
	mapping, err := newMapping(&conf)
	if err != nil {
		return nil, err
	}
	return &Client{
		env:     env,
		conf:    &conf,
		mapping: mapping,
		signer:  gateway.NewSigner(sha1.New, []byte(conf.SharedSecret)),
		log:     conf.Logger,
	}, nil
}

func NewDevClient(conf Config) (*Client, error) {
	return NewClient(Env_DEV, conf)
}

func NewProdClient(conf Config) (*Client, error) {
	return NewClient(Env_PROD, conf)
}

// NewClientFromConfig builds a Client from loaded settings. Anything other
// than "prod" selects the test environment.
func NewClientFromConfig(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	env := Env_DEV
	if cfg.Gateway.Environment == "prod" {
		env = Env_PROD
	}
	return NewClient(env, Config{
		MerchantAccount: cfg.Gateway.MerchantAccount,
		SkinCode:        cfg.Gateway.SkinCode,
		SharedSecret:    cfg.Gateway.SharedSecret,
		SessionValidity: cfg.Gateway.SessionValidity,
		PriceFloorUSD:   cfg.Validation.PriceFloorUSD,
		PriceCeilingUSD: cfg.Validation.PriceCeilingUSD,
		Logger:          logger,
	})
}

// Limits reports the registration payload for the validator's gateway
// registry: the configured USD bounds plus the acceptance currency list.
func (cli *Client) Limits() validate.GatewayLimits {
	return validate.GatewayLimits{
		PriceFloorUSD:   cli.conf.PriceFloorUSD,
		PriceCeilingUSD: cli.conf.PriceCeilingUSD,
		Currencies:      Currencies(),
	}
}

// Register installs this client's limits under its identifier.
func (cli *Client) Register(v *validate.Validator) {
	v.RegisterGateway(Identifier, cli.Limits())
}
