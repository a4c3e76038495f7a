package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"overcooked-delivery/order-svc/internal/domain"

	"github.com/google/uuid"
)

type CheckoutService struct {
	addresses AddressStore
	catalog   CatalogReader
	uow       UnitOfWork
	cache     PlacementCache
	publisher EventPublisher
	logger    *log.Logger
}

// NewCheckoutService wires the checkout engine. cache and publisher may be nil.
func NewCheckoutService(addresses AddressStore, catalog CatalogReader, uow UnitOfWork, cache PlacementCache, publisher EventPublisher, logger *log.Logger) *CheckoutService {
	if logger == nil {
		logger = log.Default()
	}
	return &CheckoutService{
		addresses: addresses,
		catalog:   catalog,
		uow:       uow,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder turns the user's cart into a confirmed order. Preconditions are checked in a
// fixed order (address, cart, restaurant, minimum order) and the first failure is returned.
// The order, its line snapshots, both tracking events and the cart deletion commit together.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID int, req domain.CheckoutRequest, idempotencyKey string) (*domain.Placement, error) {
	if req.AddressID <= 0 {
		return nil, validationError("address_id is required")
	}
	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		return nil, validationError("payment_method is required")
	}

	if idempotencyKey != "" {
		idempotencyKey = ScopedIdempotencyKey(idempotencyKey, req)
	}
	if cached := s.cachedPlacement(ctx, userID, idempotencyKey); cached != nil {
		return cached, nil
	}

	owned, err := s.addresses.AddressBelongsToUser(ctx, req.AddressID, userID)
	if err != nil {
		return nil, storageError("check address", err)
	}
	if !owned {
		return nil, fmt.Errorf("%w: address %d", ErrInvalidAddress, req.AddressID)
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, storageError("begin checkout", err)
	}
	defer tx.Rollback()

	cart, err := tx.LockCart(ctx, userID)
	if err != nil {
		return nil, storageError("lock cart", err)
	}
	if cart == nil {
		return nil, ErrEmptyCart
	}
	lines, err := tx.CartLines(ctx, cart.ID)
	if err != nil {
		return nil, storageError("load cart lines", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, cart.RestaurantID)
	if err != nil {
		return nil, storageError("load restaurant", err)
	}
	if restaurant == nil || !restaurant.IsOpen() {
		return nil, fmt.Errorf("%w: restaurant %d", ErrRestaurantClosed, cart.RestaurantID)
	}

	var subtotal int64
	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		subtotal += line.LineTotal()
		items = append(items, domain.OrderLine{
			ItemID:              line.ItemID,
			Name:                line.Name,
			Price:               line.Price,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	if subtotal < restaurant.MinOrderAmount {
		return nil, &MinimumOrderError{Minimum: restaurant.MinOrderAmount, Subtotal: subtotal}
	}

	order := &domain.Order{
		UserID:              userID,
		RestaurantID:        restaurant.ID,
		AddressID:           req.AddressID,
		Status:              domain.StatusConfirmed,
		ItemSubtotal:        subtotal,
		DeliveryFee:         restaurant.DeliveryFee,
		TotalAmount:         subtotal + restaurant.DeliveryFee,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: normalizeInstructions(req.SpecialInstructions),
		Items:               items,
	}

	if err := tx.InsertOrder(ctx, order); err != nil {
		return nil, storageError("insert order", err)
	}
	for _, item := range order.Items {
		if err := tx.InsertOrderLine(ctx, order.ID, item); err != nil {
			return nil, storageError("insert order line", err)
		}
	}
	for _, status := range []domain.OrderStatus{domain.StatusPlaced, domain.StatusConfirmed} {
		if err := tx.AppendTracking(ctx, order.ID, status); err != nil {
			return nil, storageError("append tracking", err)
		}
	}
	if err := tx.DeleteCart(ctx, cart.ID); err != nil {
		return nil, storageError("delete cart", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError("commit checkout", err)
	}

	window := domain.NewDeliveryWindow(restaurant.AvgPrepTime)
	placement := &domain.Placement{
		OrderID:               order.ID,
		ItemSubtotal:          order.ItemSubtotal,
		DeliveryFee:           order.DeliveryFee,
		TotalAmount:           order.TotalAmount,
		EstimatedDelivery:     window,
		EstimatedDeliveryTime: window.String(),
		Status:                order.Status,
		ReceiptURL:            ReceiptURL(order.ID),
	}

	s.rememberPlacement(ctx, userID, idempotencyKey, placement)
	s.publishPlaced(ctx, order)

	return placement, nil
}

// ScopedIdempotencyKey binds an Idempotency-Key to the checkout body it arrived with. Reusing a
// key with a different address, payment method or instructions starts a new checkout.
func ScopedIdempotencyKey(key string, req domain.CheckoutRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d\x00%s\x00", req.AddressID, strings.TrimSpace(req.PaymentMethod))
	if instructions := normalizeInstructions(req.SpecialInstructions); instructions != nil {
		h.Write([]byte(*instructions))
	}
	return key + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// cachedPlacement returns the placement as it was first recorded. Later status changes are
// read through the order endpoints.
func (s *CheckoutService) cachedPlacement(ctx context.Context, userID int, key string) *domain.Placement {
	if key == "" || s.cache == nil {
		return nil
	}
	placement, err := s.cache.GetPlacement(ctx, userID, key)
	if err != nil {
		s.logger.Printf("checkout: idempotency lookup failed for user %d: %v", userID, err)
		return nil
	}
	return placement
}

func (s *CheckoutService) rememberPlacement(ctx context.Context, userID int, key string, placement *domain.Placement) {
	if key == "" || s.cache == nil {
		return
	}
	if err := s.cache.SavePlacement(ctx, userID, key, placement); err != nil {
		s.logger.Printf("checkout: failed to remember order %d for key %q: %v", placement.OrderID, key, err)
	}
}

func (s *CheckoutService) publishPlaced(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	items := make([]domain.OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderEventItem{ItemID: item.ItemID, Name: item.Name, Quantity: item.Quantity})
	}
	event := domain.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalAmount:  order.TotalAmount,
		Items:        items,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Printf("checkout: failed to publish %s for order %d: %v", event.Type, order.ID, err)
	}
}
