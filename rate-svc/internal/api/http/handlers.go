package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"overcooked-delivery/auth"
	"overcooked-delivery/metrics"
	"overcooked-delivery/rate-svc/internal/domain"
	"overcooked-delivery/rate-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	create := auth.RequireUser(http.HandlerFunc(h.createReview))
	r.Handle("/api/reviews", create).Methods("POST")
	r.Handle("/api/reviews/restaurant", create).Methods("POST")

	r.HandleFunc("/api/reviews/restaurant/{restaurantId}", h.getRestaurantReviews).Methods("GET")
	r.HandleFunc("/api/reviews/restaurant/{restaurantId}/distribution", h.getRatingDistribution).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "rate-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Reviews.Create(r.Context(), userID, &review); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateReview):
			writeError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("create review failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to add review")
		}
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || restaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	reviews, err := h.Reviews.ListRestaurantReviews(r.Context(), restaurantID)
	if err != nil {
		log.Printf("list reviews failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || restaurantID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	distribution, err := h.Reviews.RatingDistribution(r.Context(), restaurantID)
	if err != nil {
		log.Printf("rating distribution failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch distribution")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": restaurantID,
		"distribution":  distribution,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}
