package main

import (
	"log"

	httpapi "overcooked-delivery/analytics-svc/internal/api/http"
	"overcooked-delivery/analytics-svc/internal/service"
	"overcooked-delivery/config"
	"overcooked-delivery/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadDotEnv()
	log.SetPrefix("[analytics-svc] ")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analytics := service.NewAnalyticsService(db, rdb)
	m := metrics.NewServerMetrics("analytics_svc", prometheus.DefaultRegisterer)

	router := httpapi.NewRouter(httpapi.NewHandler(analytics), m)
	httpapi.StartServer(":"+config.Env("PORT", "8083"), router)
}
