package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overcooked-delivery/config"
	"overcooked-delivery/metrics"
	httpapi "overcooked-delivery/rate-svc/internal/api/http"
	"overcooked-delivery/rate-svc/internal/service"
	"overcooked-delivery/rate-svc/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadDotEnv()
	logger := log.New(os.Stdout, "[rate-svc] ", log.LstdFlags|log.Lshortfile)

	db := config.MustInitPostgres()
	defer db.Close()
	if err := config.RunMigrations(db, logger); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.TopicReviews)
	defer writer.Close()

	reviewService := service.NewReviewService(
		storage.NewPostgresRepository(db),
		storage.NewRedisCache(rdb, 30*24*time.Hour),
		storage.NewKafkaPublisher(writer),
	)

	m := metrics.NewServerMetrics("rate_svc", prometheus.DefaultRegisterer)
	srv := &http.Server{
		Addr:              ":" + config.Env("PORT", "8082"),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(reviewService), m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("Rate Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}
