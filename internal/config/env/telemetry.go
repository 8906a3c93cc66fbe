package envconfig

import "github.com/caarlos0/env/v11"

type telemetryEnv struct {
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"paypal-express"`
	TracesEndpoint string `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
}

type telemetry struct {
	raw telemetryEnv
}

func NewTelemetryConfig() (*telemetry, error) {
	var raw telemetryEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &telemetry{raw: raw}, nil
}

func (cfg *telemetry) ServiceName() string    { return cfg.raw.ServiceName }
func (cfg *telemetry) TracesEndpoint() string { return cfg.raw.TracesEndpoint }
