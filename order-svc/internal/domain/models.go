package domain

import (
	"fmt"
	"time"
)

type RestaurantStatus string

const (
	RestaurantOpen   RestaurantStatus = "open"
	RestaurantClosed RestaurantStatus = "closed"
)

// Restaurant is the catalog view the checkout needs. Money is in the smallest currency unit.
type Restaurant struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Status         RestaurantStatus `json:"status"`
	MinOrderAmount int64            `json:"min_order_amount"`
	DeliveryFee    int64            `json:"delivery_fee"`
	AvgPrepTime    int              `json:"avg_prep_time"`
}

func (r *Restaurant) IsOpen() bool {
	return r.Status == RestaurantOpen
}

type MenuItem struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
}

// RestaurantMenu is a restaurant together with its current menu.
type RestaurantMenu struct {
	Restaurant
	Menu []MenuItem `json:"menu"`
}

type Address struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Line1   string `json:"address_line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type AddressRequest struct {
	Line1   string `json:"address_line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Cart struct {
	ID           int       `json:"cart_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CartLine is a cart item joined with the live catalog name and price.
type CartLine struct {
	ItemID              int     `json:"item_id"`
	Name                string  `json:"name"`
	Price               int64   `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

type CartView struct {
	CartID       int            `json:"cart_id,omitempty"`
	RestaurantID int            `json:"restaurant_id,omitempty"`
	Items        []CartViewLine `json:"items"`
	CartTotal    int64          `json:"cart_total"`
	ItemCount    int            `json:"item_count"`
}

type CartViewLine struct {
	CartLine
	LineTotal int64 `json:"line_total"`
}

// NewCartView builds the response for a cart. A nil cart yields the empty view.
func NewCartView(cart *Cart, lines []CartLine) *CartView {
	view := &CartView{Items: make([]CartViewLine, 0, len(lines))}
	if cart == nil {
		return view
	}
	view.CartID = cart.ID
	view.RestaurantID = cart.RestaurantID
	for _, line := range lines {
		view.Items = append(view.Items, CartViewLine{CartLine: line, LineTotal: line.LineTotal()})
		view.CartTotal += line.LineTotal()
		view.ItemCount += line.Quantity
	}
	return view
}

type AddItemRequest struct {
	RestaurantID        int     `json:"restaurant_id"`
	ItemID              int     `json:"item_id"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusConfirmed OrderStatus = "confirmed"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is immutable after placement except for Status.
type Order struct {
	ID                  int         `json:"id"`
	UserID              int         `json:"user_id"`
	RestaurantID        int         `json:"restaurant_id"`
	AddressID           int         `json:"address_id"`
	Status              OrderStatus `json:"status"`
	ItemSubtotal        int64       `json:"item_subtotal"`
	DeliveryFee         int64       `json:"delivery_fee"`
	TotalAmount         int64       `json:"total_amount"`
	PaymentMethod       string      `json:"payment_method"`
	SpecialInstructions *string     `json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	Items               []OrderLine `json:"items"`
}

// OrderLine is the name and price captured from the catalog at checkout.
type OrderLine struct {
	ItemID              int     `json:"item_id"`
	Name                string  `json:"name"`
	Price               int64   `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type TrackingEvent struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

type OrderSummary struct {
	OrderID        int         `json:"order_id"`
	RestaurantName string      `json:"restaurant_name"`
	Items          int         `json:"items"`
	TotalAmount    int64       `json:"total_amount"`
	Status         OrderStatus `json:"status"`
	OrderedAt      time.Time   `json:"ordered_at"`
}

type OrderDetail struct {
	Order
	RestaurantName    string          `json:"restaurant_name"`
	RestaurantAddress string          `json:"restaurant_address"`
	DeliveryAddress   string          `json:"delivery_address"`
	Tracking          []TrackingEvent `json:"tracking"`
}

type CheckoutRequest struct {
	AddressID           int     `json:"address_id"`
	PaymentMethod       string  `json:"payment_method"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type DeliveryWindow struct {
	MinMinutes int `json:"min_minutes"`
	MaxMinutes int `json:"max_minutes"`
}

func NewDeliveryWindow(avgPrepTime int) DeliveryWindow {
	return DeliveryWindow{MinMinutes: avgPrepTime, MaxMinutes: avgPrepTime + 10}
}

func (w DeliveryWindow) String() string {
	return fmt.Sprintf("%d-%d minutes", w.MinMinutes, w.MaxMinutes)
}

// Placement is the checkout result returned to the client.
type Placement struct {
	OrderID               int            `json:"order_id"`
	ItemSubtotal          int64          `json:"item_subtotal"`
	DeliveryFee           int64          `json:"delivery_fee"`
	TotalAmount           int64          `json:"total_amount"`
	EstimatedDelivery     DeliveryWindow `json:"estimated_delivery"`
	EstimatedDeliveryTime string         `json:"estimated_delivery_time"`
	Status                OrderStatus    `json:"status"`
	ReceiptURL            string         `json:"receipt_url"`
}

const (
	EventOrderPlaced    = "order_placed"
	EventOrderCancelled = "order_cancelled"
)

type OrderEvent struct {
	EventID      string           `json:"event_id"`
	Type         string           `json:"type"`
	OrderID      int              `json:"order_id"`
	UserID       int              `json:"user_id"`
	RestaurantID int              `json:"restaurant_id"`
	TotalAmount  int64            `json:"total_amount"`
	Items        []OrderEventItem `json:"items,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
