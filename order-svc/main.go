package main

import (
	"log"
	"os"
	"time"

	"overcooked-delivery/config"
	"overcooked-delivery/metrics"
	httpapi "overcooked-delivery/order-svc/internal/api/http"
	"overcooked-delivery/order-svc/internal/service"
	"overcooked-delivery/order-svc/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadDotEnv()
	logger := log.New(os.Stdout, "[order-svc] ", log.LstdFlags|log.Lshortfile)

	db := config.MustInitPostgres()
	defer db.Close()
	if err := config.RunMigrations(db, logger); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.TopicOrders)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.DefaultQRGenerator{BaseURL: config.Env("PUBLIC_BASE_URL", "http://localhost:8080")}

	catalogSvc := service.NewCatalogService(repo)
	addressSvc := service.NewAddressService(repo)
	cartSvc := service.NewCartService(repo, repo, repo)
	checkoutSvc := service.NewCheckoutService(repo, repo, repo, cache, publisher, logger)
	orderSvc := service.NewOrderService(repo, repo, publisher, qr, logger)

	m := metrics.NewServerMetrics("order_svc", prometheus.DefaultRegisterer)
	handler := httpapi.NewHandler(catalogSvc, addressSvc, cartSvc, checkoutSvc, orderSvc, m, logger)

	httpapi.StartServer(":"+config.Env("PORT", "8081"), httpapi.NewRouter(handler), logger)
}
