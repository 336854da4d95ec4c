package consumer

import (
	"context"
	stderrors "errors"
	"io"
	"sync"

	assetpairDomain "github.com/muhammadchandra19/public-api/internal/domain/assetpair"
	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Config is the kafka setup of a DictionaryConsumer.
type Config struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DictionaryConsumer drops the asset pair catalog every time the dictionary
// changes upstream. Payloads that are not a DictionaryChanged still count.
type DictionaryConsumer struct {
	reader  messageReader
	catalog assetpairDomain.Catalog
	logger  logger.Interface

	wg sync.WaitGroup
}

// NewDictionaryConsumer creates a new DictionaryConsumer instance.
func NewDictionaryConsumer(config Config, catalog assetpairDomain.Catalog, logger logger.Interface) *DictionaryConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return newDictionaryConsumer(reader, catalog, logger)
}

func newDictionaryConsumer(reader messageReader, catalog assetpairDomain.Catalog, logger logger.Interface) *DictionaryConsumer {
	return &DictionaryConsumer{
		reader:  reader,
		catalog: catalog,
		logger:  logger,
	}
}

// Start reads until ctx is done or the reader is closed.
func (c *DictionaryConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting dictionary consumer",
		logger.Field{Key: "action", Value: "dictionary_consumer_start"},
	)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.startReading(ctx)
	}()
}

func (c *DictionaryConsumer) startReading(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, io.EOF) {
				c.logger.InfoContext(ctx, "dictionary consumer reader stopped")
				return
			}
			c.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "read_dictionary_message"})
			continue
		}

		if err := c.processMessage(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, err,
				logger.Field{Key: "action", Value: "process_dictionary_message"},
				logger.Field{Key: "offset", Value: msg.Offset},
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "commit_dictionary_message"})
		}
	}
}

func (c *DictionaryConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	fields := []logger.Field{
		{Key: "partition", Value: msg.Partition},
		{Key: "offset", Value: msg.Offset},
	}
	if event, ok := decodeDictionaryChanged(msg); ok {
		fields = append(fields,
			logger.Field{Key: "asset_pair_ids", Value: event.AssetPairIDs},
			logger.Field{Key: "changed_at", Value: event.ChangedAt},
		)
	}
	c.logger.InfoContext(ctx, "asset pair dictionary changed", fields...)

	return c.catalog.Invalidate(ctx)
}

// Stop closes the reader and waits for the read loop to exit.
func (c *DictionaryConsumer) Stop(ctx context.Context) error {
	c.logger.InfoContext(ctx, "stopping dictionary consumer")

	err := c.reader.Close()
	c.wg.Wait()
	return err
}
