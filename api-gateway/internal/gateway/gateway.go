package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"overcooked-delivery/auth"
	"overcooked-delivery/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const HeaderCorrelationID = "X-Correlation-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	RateSvcURL      string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	tokens *auth.TokenManager
}

func NewGateway(config Config, client HTTPClient, tokens *auth.TokenManager) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		tokens: tokens,
	}
}

// route picks the upstream for path. protected routes need a verified bearer token.
func (g *Gateway) route(method, path string) (target string, protected bool, ok bool) {
	switch {
	case hasPathPrefix(path, "/api/cart"), hasPathPrefix(path, "/api/orders"), hasPathPrefix(path, "/api/addresses"):
		return g.config.OrderSvcURL, true, true
	case hasPathPrefix(path, "/api/reviews"):
		return g.config.RateSvcURL, method == http.MethodPost, true
	case hasPathPrefix(path, "/api/analytics"):
		return g.config.AnalyticsSvcURL, false, true
	case isRestaurantAnalytics(path):
		return g.config.AnalyticsSvcURL, false, true
	case isRestaurantCatalog(path):
		return g.config.OrderSvcURL, false, true
	}
	return "", false, false
}

func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// isRestaurantAnalytics matches /api/restaurants/{id}/analytics and /api/restaurants/{id}/top-dishes.
func isRestaurantAnalytics(path string) bool {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 || parts[0] != "api" || parts[1] != "restaurants" || parts[2] == "" {
		return false
	}
	return parts[3] == "analytics" || parts[3] == "top-dishes"
}

// isRestaurantCatalog matches /api/restaurants and /api/restaurants/{id}.
func isRestaurantCatalog(path string) bool {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" || parts[1] != "restaurants" {
		return false
	}
	return len(parts) == 2 || (len(parts) == 3 && parts[2] != "")
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	correlationID := r.Header.Get(HeaderCorrelationID)
	if correlationID == "" {
		correlationID = uuid.NewString()
		r.Header.Set(HeaderCorrelationID, correlationID)
	}
	w.Header().Set(HeaderCorrelationID, correlationID)
	log.Printf("ROUTE: %s %s [%s]", r.Method, path, correlationID)

	// Identity only ever comes from a verified token.
	r.Header.Del(auth.HeaderUserID)

	target, protected, ok := g.route(r.Method, path)
	if !ok {
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		writeError(w, http.StatusNotFound, "NOT_FOUND", "API route not found")
		return
	}

	if protected {
		claims, err := g.tokens.Verify(auth.BearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid bearer token")
			return
		}
		r.Header.Set(auth.HeaderUserID, strconv.Itoa(claims.UserID))
	}

	g.ProxyRequest(w, r, target)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		writeError(w, http.StatusBadGateway, "BAD_GATEWAY", "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) SetupRoutes(m *metrics.ServerMetrics) http.Handler {
	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}
