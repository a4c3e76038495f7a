package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"overcooked-delivery/agg-svc/internal/service"
	"overcooked-delivery/agg-svc/internal/storage"
	"overcooked-delivery/config"
)

func main() {
	config.LoadDotEnv()
	logger := log.New(os.Stdout, "[agg-svc] ", log.LstdFlags|log.Lshortfile)

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaGroupReader(config.Env("KAFKA_GROUP_ID", "agg-svc-consumer"), config.TopicOrders, config.TopicReviews)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
