package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"overcooked-delivery/auth"
	"overcooked-delivery/metrics"
	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"

	"github.com/gorilla/mux"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Addresses service.AddressServiceInterface
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
	Metrics   *metrics.ServerMetrics
	Logger    *log.Logger
}

func NewHandler(catalogSvc service.CatalogServiceInterface, addressSvc service.AddressServiceInterface, cartSvc service.CartServiceInterface, checkoutSvc service.CheckoutServiceInterface, orderSvc service.OrderServiceInterface, m *metrics.ServerMetrics, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		Catalog:   catalogSvc,
		Addresses: addressSvc,
		Carts:     cartSvc,
		Checkout:  checkoutSvc,
		Orders:    orderSvc,
		Metrics:   m,
		Logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireUser)

	api.HandleFunc("/addresses", h.addAddress).Methods("POST")
	api.HandleFunc("/addresses", h.listAddresses).Methods("GET")

	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", h.addCartItem).Methods("POST")
	api.HandleFunc("/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	api.HandleFunc("/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	api.HandleFunc("/orders", h.placeOrder).Methods("POST")
	api.HandleFunc("/orders", h.getOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid restaurant id")
		return
	}
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	var req domain.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, service.ErrValidation, "invalid JSON body")
		return
	}
	address, err := h.Addresses.Add(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, address)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	addresses, err := h.Addresses.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	var req domain.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, service.ErrValidation, "invalid JSON body")
		return
	}
	view, err := h.Carts.AddItem(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	view, err := h.Carts.GetCart(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	itemID, ok := pathID(r, "itemId")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid item id")
		return
	}
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
		h.writeError(w, service.ErrValidation, "quantity is required")
		return
	}
	if err := h.Carts.UpdateLine(r.Context(), userID, itemID, *body.Quantity); err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cart updated"})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	itemID, ok := pathID(r, "itemId")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid item id")
		return
	}
	removed, err := h.Carts.RemoveLine(r.Context(), userID, itemID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Item removed", "removed": removed})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	removed, err := h.Carts.Clear(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Cart cleared", "removed": removed})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Metrics.ObserveCheckout(service.CodeValidation)
		h.writeError(w, service.ErrValidation, "invalid JSON body")
		return
	}
	key := strings.TrimSpace(r.Header.Get(HeaderIdempotencyKey))

	placement, err := h.Checkout.PlaceOrder(r.Context(), userID, req, key)
	if err != nil {
		h.Metrics.ObserveCheckout(service.ErrorCode(err))
		h.writeError(w, err, "")
		return
	}
	h.Metrics.ObserveCheckout("success")
	writeJSON(w, http.StatusCreated, placement)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	orders, err := h.Orders.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	orderID, ok := pathID(r, "id")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid order id")
		return
	}
	order, err := h.Orders.Get(r.Context(), orderID, userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	orderID, ok := pathID(r, "id")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid order id")
		return
	}
	if err := h.Orders.Cancel(r.Context(), orderID, userID); err != nil {
		h.writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Order cancelled",
		"order_id": orderID,
		"status":   domain.StatusCancelled,
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	orderID, ok := pathID(r, "id")
	if !ok {
		h.writeError(w, service.ErrValidation, "invalid order id")
		return
	}
	png, err := h.Orders.Receipt(r.Context(), orderID, userID)
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", "inline; filename=order-"+strconv.Itoa(orderID)+".png")
	w.Write(png)
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError renders err with its wire code. Storage failures are logged and reported with a
// generic message.
func (h *Handler) writeError(w http.ResponseWriter, err error, message string) {
	code := service.ErrorCode(err)
	if message == "" {
		message = err.Error()
	}
	body := map[string]interface{}{"error": code, "message": message}

	status := http.StatusInternalServerError
	switch code {
	case service.CodeValidation, service.CodeInvalidAddress, service.CodeEmptyCart:
		status = http.StatusBadRequest
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeRestaurantClosed, service.CodeInvalidTransition:
		status = http.StatusConflict
	case service.CodeMinimumOrder:
		status = http.StatusConflict
		var minErr *service.MinimumOrderError
		if errors.As(err, &minErr) {
			body["message"] = minErr.Error()
			body["minimum_order_amount"] = minErr.Minimum
		}
	default:
		h.Logger.Printf("request failed: %v", err)
		body["message"] = "internal server error"
	}
	writeJSON(w, status, body)
}
