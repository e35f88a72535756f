package kafka_client

import (
	"encoding/json"
	"os"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"valuationbackend/types"
)

var (
	KafkaProducer *kafka.Producer
)

// SendMessage publishes a valuation event. Publishing is best-effort:
// when the producer is not configured the event is dropped silently.
func SendMessage(event types.ValuationEvent) {
	if KafkaProducer == nil {
		return
	}

	topic := os.Getenv("KAFKA_TOPIC")
	message, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Error marshalling valuation event", zap.Error(err))
		return
	}

	zap.L().Sugar().Infof("Sending message to kafka: %s", message)
	err = KafkaProducer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          message,
	}, nil)
	if err != nil {
		zap.L().Error("Error sending message to kafka: ", zap.Any("error", err.Error()))
	}
}

func init() {
	godotenv.Load()

	bootstrapServers := os.Getenv("KAFKA_BOOTSTRAPSERVERS")
	if bootstrapServers == "" {
		zap.L().Warn("KAFKA_BOOTSTRAPSERVERS not set, event publishing disabled")
		return
	}

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
		"client.id":         "valuationProducer",
		"acks":              "all",
	})
	if err != nil {
		zap.L().Error("Kafka Producer initialization failed: ", zap.Any("error", err.Error()))
		return
	}
	KafkaProducer = producer

	// Delivery report handler for produced messages
	go func() {
		for e := range KafkaProducer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					zap.L().Error("Kafka Delivery failed: ", zap.Any("error", ev.TopicPartition.Error.Error()))
				} else {
					zap.L().Sugar().Infof("Delivered message to %s", *ev.TopicPartition.Topic)
				}
			}
		}
	}()

	zap.L().Info("Connected to Kafka", zap.String("bootstrapServers", bootstrapServers))
}
