package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type storeAPIEnv struct {
	URL       string        `env:"STORE_API_URL,required,notEmpty"`
	AccessKey string        `env:"STORE_API_ACCESS_KEY,required"`
	Timeout   time.Duration `env:"STORE_API_TIMEOUT" envDefault:"10s"`
}

type storeAPI struct {
	raw storeAPIEnv
}

func NewStoreAPIConfig() (*storeAPI, error) {
	var raw storeAPIEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &storeAPI{raw: raw}, nil
}

func (cfg *storeAPI) URL() string            { return cfg.raw.URL }
func (cfg *storeAPI) AccessKey() string      { return cfg.raw.AccessKey }
func (cfg *storeAPI) Timeout() time.Duration { return cfg.raw.Timeout }
