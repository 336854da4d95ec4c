package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/muhammadchandra19/public-api/internal/consumer"
	"github.com/segmentio/kafka-go"
)

func main() {
	var (
		brokers = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic   = flag.String("topic", "asset-pairs-changed", "Kafka topic name")
		ids     = flag.String("ids", "", "Changed asset pair ids (comma-separated, optional)")
		timeout = flag.Duration("timeout", 10*time.Second, "Publish timeout")
	)
	flag.Parse()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	var assetPairIDs []string
	if *ids != "" {
		assetPairIDs = strings.Split(*ids, ",")
	}

	msg, err := consumer.NewDictionaryChangedMessage(assetPairIDs, time.Now())
	if err != nil {
		log.Fatalf("Failed to build message: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Fatalf("Failed to publish dictionary change: %v", err)
	}

	log.Printf("Published dictionary change to %s on %s: %v", *topic, *brokers, assetPairIDs)
}
