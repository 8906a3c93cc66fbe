package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers              []string `env:"KAFKA_BROKERS"`
	ExpressApprovedTopic string   `env:"KAFKA_EXPRESS_APPROVED_TOPIC" envDefault:"express.order.approved"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled reports whether any broker is configured. Without brokers events
// are dropped.
func (cfg *kafka) Enabled() bool                { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) ExpressApprovedTopic() string { return cfg.raw.ExpressApprovedTopic }

func (cfg *kafka) ExpressApprovedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
