package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"overcooked-delivery/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// ErrInvalidEvent marks events that can never be applied. They are committed and skipped.
var ErrInvalidEvent = errors.New("invalid event")

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	Logger     *log.Logger
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.Default()
	}
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Logger:     logger,
		RetryDelay: defaultRetryDelay,
	}
}

// Start consumes until ctx is cancelled. A message's offset is committed only after it has been
// applied or found unusable. Store failures are retried on the same message, so a crash or
// shutdown mid-retry leaves it to be redelivered.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Println("consumer stopped")
				return
			}
			c.Logger.Printf("Error reading message: %v", err)
			continue
		}

		if !c.process(ctx, message) {
			c.Logger.Println("consumer stopped")
			return
		}
		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				c.Logger.Println("consumer stopped")
				return
			}
			c.Logger.Printf("Error committing offset %d on %s: %v", message.Offset, message.Topic, err)
		}
	}
}

// process handles one message and reports whether its offset may be committed. It returns false
// only when ctx ends before the message could be applied.
func (c *Consumer) process(ctx context.Context, message kafka.Message) bool {
	var event domain.Event
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.Logger.Printf("Error unmarshaling message from %s: %v", message.Topic, err)
		return true
	}

	for {
		err := c.Handle(ctx, event)
		if err == nil {
			return true
		}
		if errors.Is(err, ErrInvalidEvent) {
			c.Logger.Printf("Dropping %s event %s: %v", event.Type, event.EventID, err)
			return true
		}
		c.Logger.Printf("Error handling %s event %s, retrying: %v", event.Type, event.EventID, err)

		timer := time.NewTimer(c.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// Handle applies one event to the counters. Redelivered events are recognised by their event
// id and applied once.
func (c *Consumer) Handle(ctx context.Context, event domain.Event) error {
	var apply func(context.Context, domain.Event) error
	switch event.Type {
	case domain.EventOrderPlaced:
		apply = c.Store.RecordOrderPlaced
	case domain.EventOrderCancelled:
		apply = c.Store.RecordOrderCancelled
	case domain.EventNewReview:
		if event.RestaurantRating < 1 || event.RestaurantRating > 5 {
			return fmt.Errorf("%w: review for order %d has rating %d", ErrInvalidEvent, event.OrderID, event.RestaurantRating)
		}
		apply = c.Store.RecordReview
	default:
		return nil
	}

	if event.EventID != "" {
		fresh, err := c.Store.MarkProcessed(ctx, event.EventID)
		if err != nil {
			return err
		}
		if !fresh {
			c.Logger.Printf("skipping duplicate event %s", event.EventID)
			return nil
		}
	}

	if err := apply(ctx, event); err != nil {
		if event.EventID != "" {
			if clearErr := c.Store.ClearProcessed(ctx, event.EventID); clearErr != nil {
				c.Logger.Printf("failed to clear marker for %s: %v", event.EventID, clearErr)
			}
		}
		return err
	}

	c.Logger.Printf("Processed %s for restaurant %d", event.Type, event.RestaurantID)
	return nil
}
