// Package config loads gateway settings from a YAML file with environment
// overrides. Everything an adapter needs at construction time lives here so
// secrets stay out of code; adapters consume the result through their
// NewClientFromConfig constructors.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Gateway    GatewayConfig
	Validation ValidationConfig
	Logging    LoggingConfig
}

type GatewayConfig struct {
	// Environment selects the processor endpoint set, "dev" or "prod".
	Environment     string
	MerchantAccount string
	SkinCode        string
	SharedSecret    string
	BaseURL         string
	// SessionValidity is how long a staged hosted-page session stays
	// payable.
	SessionValidity time.Duration
}

type ValidationConfig struct {
	PriceFloorUSD      decimal.Decimal
	PriceCeilingUSD    decimal.Decimal
	ForbiddenCountries []string
}

type LoggingConfig struct {
	Level string
}

// Load reads donation.yaml from the given path (or the working directory
// when empty) and applies DONATION_* environment overrides. A missing file
// is fine; missing credentials are not.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("donation")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("DONATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("gateway.environment", "dev")
	v.SetDefault("gateway.session_validity", "48h")
	v.SetDefault("validation.price_floor_usd", "1")
	v.SetDefault("validation.price_ceiling_usd", "10000")
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	sessionValidity, err := time.ParseDuration(v.GetString("gateway.session_validity"))
	if err != nil {
		return nil, fmt.Errorf("invalid gateway.session_validity: %w", err)
	}
	floor, err := decimal.NewFromString(v.GetString("validation.price_floor_usd"))
	if err != nil {
		return nil, fmt.Errorf("invalid validation.price_floor_usd: %w", err)
	}
	ceiling, err := decimal.NewFromString(v.GetString("validation.price_ceiling_usd"))
	if err != nil {
		return nil, fmt.Errorf("invalid validation.price_ceiling_usd: %w", err)
	}

	cfg := &Config{
		Gateway: GatewayConfig{
			Environment:     v.GetString("gateway.environment"),
			MerchantAccount: v.GetString("gateway.merchant_account"),
			SkinCode:        v.GetString("gateway.skin_code"),
			SharedSecret:    v.GetString("gateway.shared_secret"),
			BaseURL:         v.GetString("gateway.base_url"),
			SessionValidity: sessionValidity,
		},
		Validation: ValidationConfig{
			PriceFloorUSD:      floor,
			PriceCeilingUSD:    ceiling,
			ForbiddenCountries: v.GetStringSlice("validation.forbidden_countries"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("logging.level"),
		},
	}
	if cfg.Gateway.SharedSecret == "" {
		return nil, fmt.Errorf("gateway.shared_secret is required")
	}
	return cfg, nil
}
