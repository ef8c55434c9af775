package adyen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opendonate/donation-sdk/config"
	"github.com/opendonate/donation-sdk/validate"
)

func TestNewClientFromConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`gateway:
  environment: prod
  merchant_account: FileMerchant
  skin_code: f1le
  shared_secret: file-secret
validation:
  price_floor_usd: "2"
  price_ceiling_usd: "5000"
  forbidden_countries: [IR]
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donation.yaml"), yaml, 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cli, err := NewClientFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, Env_PROD, cli.env)
	assert.Equal(t, "FileMerchant", cli.conf.MerchantAccount)
	assert.Equal(t, "f1le", cli.conf.SkinCode)

	limits := cli.Limits()
	assert.Equal(t, "2", limits.PriceFloorUSD.String())
	assert.Equal(t, "5000", limits.PriceCeilingUSD.String())

	// The loaded limits flow through to validation.
	v := validate.New(cfg.Validation.ForbiddenCountries)
	cli.Register(v)
	errs := v.Validate(map[string]string{
		"amount":        "1",
		"currency_code": "USD",
		"gateway":       Identifier,
	}, nil)
	assert.Equal(t, "Please enter a valid amount.", errs[validate.TokenAmount])
}
