package service

import (
	"context"

	"overcooked-delivery/agg-svc/internal/domain"
	"overcooked-delivery/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	ClearProcessed(ctx context.Context, eventID string) error
	RecordOrderPlaced(ctx context.Context, event domain.Event) error
	RecordOrderCancelled(ctx context.Context, event domain.Event) error
	RecordReview(ctx context.Context, event domain.Event) error
}

// MessageReader is the part of a consumer-group *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Handle(ctx context.Context, event domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
