package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"overcooked-delivery/api-gateway/internal/gateway"
	"overcooked-delivery/auth"
	"overcooked-delivery/config"
	"overcooked-delivery/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
)

func main() {
	config.LoadDotEnv()

	secret := config.Env("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	cfg := gateway.Config{
		OrderSvcURL:     config.Env("ORDER_SVC_URL", "http://localhost:8081"),
		RateSvcURL:      config.Env("RATE_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: config.Env("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{Timeout: 15 * time.Second}, auth.NewTokenManager(secret, 24*time.Hour))
	m := metrics.NewServerMetrics("api_gateway", prometheus.DefaultRegisterer)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", gateway.HeaderCorrelationID},
		ExposedHeaders:   []string{gateway.HeaderCorrelationID},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + config.Env("PORT", "8080"),
		Handler:           c.Handler(gw.SetupRoutes(m)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("API Gateway starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
