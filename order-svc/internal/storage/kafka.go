package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes order events keyed by restaurant, so one restaurant's events stay
// on one partition.
type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)
