package service

import (
	"context"
	"fmt"
	"strings"

	"overcooked-delivery/order-svc/internal/domain"
)

type CartService struct {
	repo    CartRepository
	catalog CatalogReader
	uow     UnitOfWork
}

func NewCartService(repo CartRepository, catalog CatalogReader, uow UnitOfWork) *CartService {
	return &CartService{repo: repo, catalog: catalog, uow: uow}
}

// AddItem adds quantity of a menu item to the user's cart. Adding an item from another
// restaurant empties the cart and rebinds it to the new restaurant. The cart row stays locked
// from the restaurant check until the line is written, so concurrent adds and checkouts of the
// same cart run one after the other.
func (s *CartService) AddItem(ctx context.Context, userID int, req domain.AddItemRequest) (*domain.CartView, error) {
	if req.RestaurantID <= 0 || req.ItemID <= 0 {
		return nil, validationError("restaurant_id and item_id are required")
	}
	if req.Quantity < 1 {
		return nil, validationError("quantity must be at least 1")
	}

	item, err := s.catalog.GetMenuItem(ctx, req.ItemID)
	if err != nil {
		return nil, storageError("load menu item", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, req.ItemID)
	}
	if item.RestaurantID != req.RestaurantID {
		return nil, validationError("item %d is not on the menu of restaurant %d", req.ItemID, req.RestaurantID)
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, storageError("begin add item", err)
	}
	defer tx.Rollback()

	cart, err := tx.LockOrCreateCart(ctx, userID, req.RestaurantID)
	if err != nil {
		return nil, storageError("lock cart", err)
	}
	if cart.RestaurantID != req.RestaurantID {
		if err := tx.RebindCart(ctx, cart.ID, req.RestaurantID); err != nil {
			return nil, storageError("rebind cart", err)
		}
		cart.RestaurantID = req.RestaurantID
	}
	if err := tx.UpsertLine(ctx, cart.ID, req.ItemID, req.Quantity, normalizeInstructions(req.SpecialInstructions)); err != nil {
		return nil, storageError("add cart line", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError("commit add item", err)
	}

	lines, err := s.repo.CartLines(ctx, cart.ID)
	if err != nil {
		return nil, storageError("load cart lines", err)
	}
	return domain.NewCartView(cart, lines), nil
}

func (s *CartService) GetCart(ctx context.Context, userID int) (*domain.CartView, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, storageError("load cart", err)
	}
	if cart == nil {
		return domain.NewCartView(nil, nil), nil
	}

	lines, err := s.repo.CartLines(ctx, cart.ID)
	if err != nil {
		return nil, storageError("load cart lines", err)
	}
	return domain.NewCartView(cart, lines), nil
}

// UpdateLine sets the quantity of an existing line. A quantity of zero removes the line and,
// like RemoveLine, succeeds when there is nothing to remove.
func (s *CartService) UpdateLine(ctx context.Context, userID, itemID, quantity int) error {
	if itemID <= 0 {
		return validationError("item_id is required")
	}
	if quantity < 0 {
		return validationError("quantity must not be negative")
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return storageError("load cart", err)
	}

	if quantity == 0 {
		if cart == nil {
			return nil
		}
		if _, err := s.repo.DeleteLine(ctx, cart.ID, itemID); err != nil {
			return storageError("remove cart line", err)
		}
		return nil
	}

	if cart == nil {
		return fmt.Errorf("%w: cart line for item %d", ErrNotFound, itemID)
	}
	updated, err := s.repo.SetLineQuantity(ctx, cart.ID, itemID, quantity)
	if err != nil {
		return storageError("update cart line", err)
	}
	if updated == 0 {
		return fmt.Errorf("%w: cart line for item %d", ErrNotFound, itemID)
	}
	return nil
}

func (s *CartService) RemoveLine(ctx context.Context, userID, itemID int) (int64, error) {
	if itemID <= 0 {
		return 0, validationError("item_id is required")
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return 0, storageError("load cart", err)
	}
	if cart == nil {
		return 0, nil
	}

	removed, err := s.repo.DeleteLine(ctx, cart.ID, itemID)
	if err != nil {
		return 0, storageError("remove cart line", err)
	}
	return removed, nil
}

// Clear removes every line and returns how many were removed. The cart keeps its restaurant.
func (s *CartService) Clear(ctx context.Context, userID int) (int64, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return 0, storageError("load cart", err)
	}
	if cart == nil {
		return 0, nil
	}

	removed, err := s.repo.ClearLines(ctx, cart.ID)
	if err != nil {
		return 0, storageError("clear cart", err)
	}
	return removed, nil
}

func normalizeInstructions(instructions *string) *string {
	if instructions == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*instructions)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
