package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

const (
	ReviewTopic        = "review.created"
	StatsConsumerGroup = "goodbooks-stats"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume loops over rebalances until the group is closed.
func Consume(consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	ctx := context.Background()
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return
		}
	}
}
