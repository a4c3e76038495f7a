package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"overcooked-delivery/analytics-svc/internal/domain"
	"overcooked-delivery/analytics-svc/internal/service"
	"overcooked-delivery/metrics"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics", h.getAnalytics).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/top-dishes", h.getTopDishes).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// getTopToday degrades to an empty list: the dashboard should render even with no data.
func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		log.Printf("top today failed: %v", err)
		writeJSON(w, http.StatusOK, []domain.DishAnalytics{})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantParam(w, r)
	if !ok {
		return
	}

	stats, err := h.Analytics.RestaurantStats(r.Context(), restaurantID)
	if err != nil {
		log.Printf("restaurant stats failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch analytics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantParam(w, r)
	if !ok {
		return
	}

	limit := service.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	data, err := h.Analytics.TopDishes(r.Context(), restaurantID, limit)
	if err != nil {
		log.Printf("top dishes failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch top dishes")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func restaurantParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid restaurant id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
