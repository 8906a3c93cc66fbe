package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type paypalEnv struct {
	ClientID        string        `env:"PAYPAL_CLIENT_ID,required,notEmpty"`
	SDKURL          string        `env:"PAYPAL_SDK_URL" envDefault:"https://www.paypal.com/sdk/js"`
	SDKReadyTimeout time.Duration `env:"PAYPAL_SDK_READY_TIMEOUT" envDefault:"5s"`
	SDKFetchTimeout time.Duration `env:"PAYPAL_SDK_FETCH_TIMEOUT" envDefault:"15s"`
	SingleFlight    bool          `env:"EXPRESS_SINGLE_FLIGHT" envDefault:"true"`
	CatalogTTL      time.Duration `env:"PAYPAL_CATALOG_TTL" envDefault:"5m"`
	CatalogSize     int           `env:"PAYPAL_CATALOG_SIZE" envDefault:"10000"`
}

type paypal struct {
	raw paypalEnv
}

func NewPayPalConfig() (*paypal, error) {
	var raw paypalEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &paypal{raw: raw}, nil
}

func (cfg *paypal) ClientID() string               { return cfg.raw.ClientID }
func (cfg *paypal) SDKURL() string                 { return cfg.raw.SDKURL }
func (cfg *paypal) SDKReadyTimeout() time.Duration { return cfg.raw.SDKReadyTimeout }
func (cfg *paypal) SDKFetchTimeout() time.Duration { return cfg.raw.SDKFetchTimeout }
func (cfg *paypal) SingleFlight() bool             { return cfg.raw.SingleFlight }
func (cfg *paypal) CatalogTTL() time.Duration      { return cfg.raw.CatalogTTL }
func (cfg *paypal) CatalogSize() int               { return cfg.raw.CatalogSize }
