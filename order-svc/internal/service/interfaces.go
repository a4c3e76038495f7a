package service

import (
	"context"

	"overcooked-delivery/order-svc/internal/domain"
)

// CatalogReader is read-only access to restaurants and menu items. Lookups return nil, nil
// when the row does not exist.
type CatalogReader interface {
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type AddressStore interface {
	AddressBelongsToUser(ctx context.Context, addressID, userID int) (bool, error)
	// AddAddress inserts the address and fills in its ID.
	AddAddress(ctx context.Context, address *domain.Address) error
	ListAddresses(ctx context.Context, userID int) ([]domain.Address, error)
}

type CartRepository interface {
	GetCart(ctx context.Context, userID int) (*domain.Cart, error)
	SetLineQuantity(ctx context.Context, cartID, itemID, quantity int) (int64, error)
	DeleteLine(ctx context.Context, cartID, itemID int) (int64, error)
	ClearLines(ctx context.Context, cartID int) (int64, error)
	CartLines(ctx context.Context, cartID int) ([]domain.CartLine, error)
}

type OrderReader interface {
	ListOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, orderID, userID int) (*domain.OrderDetail, error)
}

// UnitOfWork opens a ledger transaction. Every write issued through the returned LedgerTx
// becomes visible only after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) (LedgerTx, error)
}

type LedgerTx interface {
	LockCart(ctx context.Context, userID int) (*domain.Cart, error)
	// LockOrCreateCart returns the user's cart locked for the rest of the transaction,
	// creating it bound to restaurantID when the user has none.
	LockOrCreateCart(ctx context.Context, userID, restaurantID int) (*domain.Cart, error)
	RebindCart(ctx context.Context, cartID, restaurantID int) error
	UpsertLine(ctx context.Context, cartID, itemID, quantity int, instructions *string) error
	CartLines(ctx context.Context, cartID int) ([]domain.CartLine, error)
	InsertOrder(ctx context.Context, order *domain.Order) error
	InsertOrderLine(ctx context.Context, orderID int, line domain.OrderLine) error
	AppendTracking(ctx context.Context, orderID int, status domain.OrderStatus) error
	DeleteCart(ctx context.Context, cartID int) error
	CancelOrder(ctx context.Context, orderID, userID int) (*domain.Order, error)
	OrderStatus(ctx context.Context, orderID, userID int) (domain.OrderStatus, bool, error)
	Commit() error
	Rollback() error
}

// PlacementCache remembers checkout results per idempotency key.
type PlacementCache interface {
	GetPlacement(ctx context.Context, userID int, key string) (*domain.Placement, error)
	SavePlacement(ctx context.Context, userID int, key string, placement *domain.Placement) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CartServiceInterface interface {
	AddItem(ctx context.Context, userID int, req domain.AddItemRequest) (*domain.CartView, error)
	GetCart(ctx context.Context, userID int) (*domain.CartView, error)
	UpdateLine(ctx context.Context, userID, itemID, quantity int) error
	RemoveLine(ctx context.Context, userID, itemID int) (int64, error)
	Clear(ctx context.Context, userID int) (int64, error)
}

type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context, userID int, req domain.CheckoutRequest, idempotencyKey string) (*domain.Placement, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, userID int) ([]domain.OrderSummary, error)
	Get(ctx context.Context, orderID, userID int) (*domain.OrderDetail, error)
	Cancel(ctx context.Context, orderID, userID int) error
	Receipt(ctx context.Context, orderID, userID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.RestaurantMenu, error)
}

type AddressServiceInterface interface {
	Add(ctx context.Context, userID int, req domain.AddressRequest) (*domain.Address, error)
	List(ctx context.Context, userID int) ([]domain.Address, error)
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ AddressServiceInterface  = (*AddressService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
)
