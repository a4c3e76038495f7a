package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"
)

// Begin opens the unit of work used by cart writes, checkout and cancellation.
func (r *PostgresRepository) Begin(ctx context.Context) (service.LedgerTx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &LedgerTx{tx: tx}, nil
}

// LedgerTx issues every ledger write against a single *sql.Tx.
type LedgerTx struct {
	tx *sql.Tx
}

// LockCart reads the user's cart and holds its row lock until the transaction ends, so two
// checkouts of the same cart run one after the other.
func (l *LedgerTx) LockCart(ctx context.Context, userID int) (*domain.Cart, error) {
	return selectCart(ctx, l.tx, "SELECT id, user_id, restaurant_id, created_at FROM carts WHERE user_id = $1 FOR UPDATE", userID)
}

// LockOrCreateCart upserts the user's cart and keeps its row locked. When a concurrent checkout
// deleted the cart first, the insert creates a fresh one instead of failing.
func (l *LedgerTx) LockOrCreateCart(ctx context.Context, userID, restaurantID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := l.tx.QueryRowContext(ctx, `
		INSERT INTO carts (user_id, restaurant_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, restaurant_id, created_at`,
		userID, restaurantID).
		Scan(&cart.ID, &cart.UserID, &cart.RestaurantID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RebindCart drops every line and points the cart at another restaurant.
func (l *LedgerTx) RebindCart(ctx context.Context, cartID, restaurantID int) error {
	if _, err := l.tx.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return err
	}
	_, err := l.tx.ExecContext(ctx, "UPDATE carts SET restaurant_id = $1 WHERE id = $2", restaurantID, cartID)
	return err
}

func (l *LedgerTx) UpsertLine(ctx context.Context, cartID, itemID, quantity int, instructions *string) error {
	_, err := l.tx.ExecContext(ctx, `
		INSERT INTO cart_items (cart_id, item_id, quantity, special_instructions)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, item_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
			special_instructions = COALESCE(EXCLUDED.special_instructions, cart_items.special_instructions)`,
		cartID, itemID, quantity, instructions)
	return err
}

func (l *LedgerTx) CartLines(ctx context.Context, cartID int) ([]domain.CartLine, error) {
	return cartLines(ctx, l.tx, cartID)
}

func (l *LedgerTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	return l.tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, address_id, status, item_subtotal, delivery_fee, payment_method, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		order.UserID, order.RestaurantID, order.AddressID, string(order.Status),
		order.ItemSubtotal, order.DeliveryFee, order.PaymentMethod, order.SpecialInstructions).
		Scan(&order.ID, &order.CreatedAt)
}

func (l *LedgerTx) InsertOrderLine(ctx context.Context, orderID int, line domain.OrderLine) error {
	_, err := l.tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, item_id, name, price, quantity, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		orderID, line.ItemID, line.Name, line.Price, line.Quantity, line.SpecialInstructions)
	return err
}

func (l *LedgerTx) AppendTracking(ctx context.Context, orderID int, status domain.OrderStatus) error {
	_, err := l.tx.ExecContext(ctx,
		"INSERT INTO order_tracking (order_id, status) VALUES ($1, $2)",
		orderID, string(status))
	return err
}

func (l *LedgerTx) DeleteCart(ctx context.Context, cartID int) error {
	if _, err := l.tx.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
		return err
	}
	_, err := l.tx.ExecContext(ctx, "DELETE FROM carts WHERE id = $1", cartID)
	return err
}

// CancelOrder flips a confirmed order to cancelled. It returns nil, nil when no row matched:
// the order is missing, owned by someone else, or no longer confirmed.
func (l *LedgerTx) CancelOrder(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order := domain.Order{Status: domain.StatusCancelled}
	err := l.tx.QueryRowContext(ctx, `
		UPDATE orders SET status = 'cancelled'
		WHERE id = $1 AND user_id = $2 AND status = 'confirmed'
		RETURNING id, user_id, restaurant_id, item_subtotal, delivery_fee`,
		orderID, userID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.ItemSubtotal, &order.DeliveryFee)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order.TotalAmount = order.ItemSubtotal + order.DeliveryFee
	return &order, nil
}

func (l *LedgerTx) OrderStatus(ctx context.Context, orderID, userID int) (domain.OrderStatus, bool, error) {
	var status domain.OrderStatus
	err := l.tx.QueryRowContext(ctx,
		"SELECT status FROM orders WHERE id = $1 AND user_id = $2", orderID, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

func (l *LedgerTx) Commit() error {
	return l.tx.Commit()
}

// Rollback is a no-op after a successful Commit.
func (l *LedgerTx) Rollback() error {
	if err := l.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

var (
	_ service.CartRepository = (*PostgresRepository)(nil)
	_ service.CatalogReader  = (*PostgresRepository)(nil)
	_ service.AddressStore   = (*PostgresRepository)(nil)
	_ service.OrderReader    = (*PostgresRepository)(nil)
	_ service.UnitOfWork     = (*PostgresRepository)(nil)
	_ service.LedgerTx       = (*LedgerTx)(nil)
)
