package kafka

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const LendingTopic = "library.lending"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library.lending"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Partitioner = sarama.NewHashPartitioner

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventBookAdded       EventType = "BOOK_ADDED"
	EventBookBorrowed    EventType = "BOOK_BORROWED"
	EventBookReturned    EventType = "BOOK_RETURNED"
	EventLateFeePaid     EventType = "LATE_FEE_PAID"
	EventLateFeeRefunded EventType = "LATE_FEE_REFUNDED"
)

type LendingEvent struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	PatronID      string    `json:"patronId,omitempty"`
	BookID        int64     `json:"bookId,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event LendingEvent) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewPublisher(producer sarama.SyncProducer, topic string) Publisher {
	if topic == "" {
		topic = LendingTopic
	}
	return &publisher{
		producer: producer,
		topic:    topic,
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// Publish keys messages by book so events of one book stay ordered within a partition.
func (p *publisher) Publish(_ context.Context, event LendingEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "producer.SendMessage")
	}
	return nil
}

type nopPublisher struct{}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, LendingEvent) error { return nil }
