package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"overcooked-delivery/order-svc/internal/domain"

	"github.com/google/uuid"
)

type OrderService struct {
	reader    OrderReader
	uow       UnitOfWork
	publisher EventPublisher
	qr        QRGenerator
	logger    *log.Logger
}

func NewOrderService(reader OrderReader, uow UnitOfWork, publisher EventPublisher, qr QRGenerator, logger *log.Logger) *OrderService {
	if logger == nil {
		logger = log.Default()
	}
	return &OrderService{reader: reader, uow: uow, publisher: publisher, qr: qr, logger: logger}
}

func (s *OrderService) List(ctx context.Context, userID int) ([]domain.OrderSummary, error) {
	orders, err := s.reader.ListOrders(ctx, userID)
	if err != nil {
		return nil, storageError("list orders", err)
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	return orders, nil
}

// Get returns the order only when it belongs to userID; any other order is reported as
// not found.
func (s *OrderService) Get(ctx context.Context, orderID, userID int) (*domain.OrderDetail, error) {
	if orderID <= 0 {
		return nil, validationError("order id must be positive")
	}
	order, err := s.reader.GetOrder(ctx, orderID, userID)
	if err != nil {
		return nil, storageError("load order", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return order, nil
}

// Cancel moves a confirmed order to cancelled. The status guard and the update are a single
// conditional statement, so of two concurrent requests only one appends a tracking event.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID int) error {
	if orderID <= 0 {
		return validationError("order id must be positive")
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return storageError("begin cancel", err)
	}
	defer tx.Rollback()

	cancelled, err := tx.CancelOrder(ctx, orderID, userID)
	if err != nil {
		return storageError("cancel order", err)
	}
	if cancelled == nil {
		status, found, err := tx.OrderStatus(ctx, orderID, userID)
		if err != nil {
			return storageError("load order status", err)
		}
		if !found {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return fmt.Errorf("%w: order %d is %s", ErrInvalidTransition, orderID, status)
	}

	if err := tx.AppendTracking(ctx, orderID, domain.StatusCancelled); err != nil {
		return storageError("append tracking", err)
	}
	if err := tx.Commit(); err != nil {
		return storageError("commit cancel", err)
	}

	s.publishCancelled(ctx, cancelled)
	return nil
}

// Receipt renders the QR code that links the order to its review page.
func (s *OrderService) Receipt(ctx context.Context, orderID, userID int) ([]byte, error) {
	if _, err := s.Get(ctx, orderID, userID); err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(orderID)
	if err != nil {
		return nil, fmt.Errorf("generate receipt qr: %w", err)
	}
	return png, nil
}

func (s *OrderService) publishCancelled(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         domain.EventOrderCancelled,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Printf("orders: failed to publish %s for order %d: %v", event.Type, order.ID, err)
	}
}
