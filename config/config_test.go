package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("DONATION_GATEWAY_SHARED_SECRET", "s3cr3t")
	os.Setenv("DONATION_GATEWAY_MERCHANT_ACCOUNT", "TestMerchant")
	os.Setenv("DONATION_GATEWAY_SKIN_CODE", "sk1n")
	defer func() {
		os.Unsetenv("DONATION_GATEWAY_SHARED_SECRET")
		os.Unsetenv("DONATION_GATEWAY_MERCHANT_ACCOUNT")
		os.Unsetenv("DONATION_GATEWAY_SKIN_CODE")
	}()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.Gateway.SharedSecret)
	assert.Equal(t, "TestMerchant", cfg.Gateway.MerchantAccount)
	assert.Equal(t, "dev", cfg.Gateway.Environment)
	assert.Equal(t, "48h0m0s", cfg.Gateway.SessionValidity.String())
	assert.Equal(t, "1", cfg.Validation.PriceFloorUSD.String())
	assert.Equal(t, "10000", cfg.Validation.PriceCeilingUSD.String())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingSecret(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shared_secret")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`gateway:
  environment: prod
  merchant_account: FileMerchant
  skin_code: f1le
  shared_secret: file-secret
  session_validity: 24h
validation:
  price_floor_usd: "2"
  price_ceiling_usd: "5000"
  forbidden_countries: [IR, KP]
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donation.yaml"), yaml, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Gateway.Environment)
	assert.Equal(t, "file-secret", cfg.Gateway.SharedSecret)
	assert.Equal(t, "24h0m0s", cfg.Gateway.SessionValidity.String())
	assert.Equal(t, []string{"IR", "KP"}, cfg.Validation.ForbiddenCountries)
	assert.Equal(t, "5000", cfg.Validation.PriceCeilingUSD.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
}
