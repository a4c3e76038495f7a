package httpapi

import (
	"net/http"

	"overcooked-delivery/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, m *metrics.ServerMetrics) http.Handler {
	r := mux.NewRouter()
	r.Use(m.Middleware)
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
