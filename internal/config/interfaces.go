package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type StoreAPI interface {
	URL() string
	AccessKey() string
	Timeout() time.Duration
}

type PayPal interface {
	ClientID() string
	SDKURL() string
	SDKReadyTimeout() time.Duration
	SDKFetchTimeout() time.Duration
	SingleFlight() bool
	CatalogTTL() time.Duration
	CatalogSize() int
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	ExpressApprovedTopic() string
	ExpressApprovedProducerConfig() *sarama.Config
}

type Telemetry interface {
	ServiceName() string
	TracesEndpoint() string
}

type I18n interface {
	DefaultLocale() string
	MessagesPath() string
}
