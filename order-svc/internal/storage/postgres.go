package storage

import (
	"context"
	"database/sql"
	"errors"

	"overcooked-delivery/order-svc/internal/domain"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(address, ''), status, min_order_amount, delivery_fee, avg_prep_time
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Status, &rest.MinOrderAmount, &rest.DeliveryFee, &rest.AvgPrepTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, restaurant_id, name, price FROM menu_items WHERE id = $1", id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), status, min_order_amount, delivery_fee, avg_prep_time
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Status, &rest.MinOrderAmount, &rest.DeliveryFee, &rest.AvgPrepTime); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, restaurant_id, name, price FROM menu_items WHERE restaurant_id = $1 ORDER BY id", restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) AddAddress(ctx context.Context, address *domain.Address) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO addresses (user_id, address_line1, city, state, pincode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		address.UserID, address.Line1, address.City, address.State, address.Pincode).
		Scan(&address.ID)
}

func (r *PostgresRepository) ListAddresses(ctx context.Context, userID int) ([]domain.Address, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, user_id, address_line1, city, state, pincode FROM addresses WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []domain.Address{}
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Line1, &a.City, &a.State, &a.Pincode); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) AddressBelongsToUser(ctx context.Context, addressID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM addresses WHERE id = $1 AND user_id = $2)",
		addressID, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) GetCart(ctx context.Context, userID int) (*domain.Cart, error) {
	return selectCart(ctx, r.DB, "SELECT id, user_id, restaurant_id, created_at FROM carts WHERE user_id = $1", userID)
}

func (r *PostgresRepository) SetLineQuantity(ctx context.Context, cartID, itemID, quantity int) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND item_id = $3",
		quantity, cartID, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteLine(ctx context.Context, cartID, itemID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1 AND item_id = $2", cartID, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ClearLines(ctx context.Context, cartID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CartLines(ctx context.Context, cartID int) ([]domain.CartLine, error) {
	return cartLines(ctx, r.DB, cartID)
}

func (r *PostgresRepository) ListOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, r.name, COUNT(oi.id), o.item_subtotal + o.delivery_fee, o.status, o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id, r.name
		ORDER BY o.created_at DESC, o.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderSummary{}
	for rows.Next() {
		var o domain.OrderSummary
		if err := rows.Scan(&o.OrderID, &o.RestaurantName, &o.Items, &o.TotalAmount, &o.Status, &o.OrderedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrder loads an order scoped to its owner. It returns nil, nil when the order does not
// exist or belongs to someone else.
func (r *PostgresRepository) GetOrder(ctx context.Context, orderID, userID int) (*domain.OrderDetail, error) {
	var detail domain.OrderDetail
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, o.address_id, o.status, o.item_subtotal, o.delivery_fee,
			o.payment_method, o.special_instructions, o.created_at,
			r.name, COALESCE(r.address, ''),
			a.address_line1 || ', ' || a.city || ', ' || a.state || ' - ' || a.pincode
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN addresses a ON a.id = o.address_id
		WHERE o.id = $1 AND o.user_id = $2`, orderID, userID).
		Scan(&detail.ID, &detail.UserID, &detail.RestaurantID, &detail.AddressID, &detail.Status,
			&detail.ItemSubtotal, &detail.DeliveryFee, &detail.PaymentMethod, &detail.SpecialInstructions,
			&detail.CreatedAt, &detail.RestaurantName, &detail.RestaurantAddress, &detail.DeliveryAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	detail.TotalAmount = detail.ItemSubtotal + detail.DeliveryFee

	if detail.Items, err = r.orderLines(ctx, orderID); err != nil {
		return nil, err
	}
	if detail.Tracking, err = r.tracking(ctx, orderID); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *PostgresRepository) orderLines(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, price, quantity, special_instructions
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Price, &line.Quantity, &line.SpecialInstructions); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) tracking(ctx context.Context, orderID int) ([]domain.TrackingEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT status, created_at
		FROM order_tracking
		WHERE order_id = $1
		ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.TrackingEvent{}
	for rows.Next() {
		var event domain.TrackingEvent
		if err := rows.Scan(&event.Status, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func selectCart(ctx context.Context, q queryer, query string, userID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := q.QueryRowContext(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.RestaurantID, &cart.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// cartLines reads the lines of a cart joined with the current catalog name and price. Lines whose
// item is not on the menu of the cart's restaurant are never returned.
func cartLines(ctx context.Context, q queryer, cartID int) ([]domain.CartLine, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT ci.item_id, mi.name, mi.price, ci.quantity, ci.special_instructions
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN menu_items mi ON mi.id = ci.item_id AND mi.restaurant_id = c.restaurant_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Price, &line.Quantity, &line.SpecialInstructions); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
