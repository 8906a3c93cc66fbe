package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/paypal-express/internal/config/env"
)

var cfg *config

type config struct {
	Server    Server
	StoreAPI  StoreAPI
	PayPal    PayPal
	Logger    Logger
	Kafka     Kafka
	Telemetry Telemetry
	I18n      I18n
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	storeAPICfg, err := envconfig.NewStoreAPIConfig()
	if err != nil {
		return fmt.Errorf("%s StoreAPI: %w", op, err)
	}

	paypalCfg, err := envconfig.NewPayPalConfig()
	if err != nil {
		return fmt.Errorf("%s PayPal: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	telemetryCfg, err := envconfig.NewTelemetryConfig()
	if err != nil {
		return fmt.Errorf("%s Telemetry: %w", op, err)
	}

	i18nCfg, err := envconfig.NewI18nConfig()
	if err != nil {
		return fmt.Errorf("%s I18n: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		StoreAPI:  storeAPICfg,
		PayPal:    paypalCfg,
		Logger:    loggerCfg,
		Kafka:     kafkaCfg,
		Telemetry: telemetryCfg,
		I18n:      i18nCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
