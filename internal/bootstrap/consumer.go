package bootstrap

import "github.com/muhammadchandra19/public-api/internal/consumer"

// Consumer holds the background consumers. DictionaryConsumer is nil when
// dictionary change events are disabled.
type Consumer struct {
	DictionaryConsumer *consumer.DictionaryConsumer
}

// registerConsumer registers the consumers.
func (b *Bootstrap) registerConsumer() {
	cfg := b.Config.DictionaryKafka
	if !cfg.Enabled {
		return
	}

	b.Consumer.DictionaryConsumer = consumer.NewDictionaryConsumer(consumer.Config{
		Brokers:       cfg.Brokers,
		Topic:         cfg.Topic,
		ConsumerGroup: cfg.ConsumerGroup,
	}, b.Usecase.AssetPairUsecase, b.Logger)
}
