package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	TopicOrders  = "orders"
	TopicReviews = "reviews"
)

// LoadDotEnv loads a .env file when one is present. Missing files are not an error:
// containers get their environment from the orchestrator.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
}

func Env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		Env("DB_HOST", "localhost"),
		Env("DB_PORT", "5432"),
		Env("DB_USER", "postgres"),
		Env("DB_PASSWORD", "postgres"),
		Env("DB_NAME", "overcooked"),
		Env("DB_SSLMODE", "disable"),
	)
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: Env("REDIS_HOST", "localhost") + ":" + Env("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func kafkaBroker() string {
	return Env("KAFKA_BROKER", "localhost:9092")
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{kafkaBroker()},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaGroupReader subscribes one consumer group to several topics.
func NewKafkaGroupReader(groupID string, topics ...string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{kafkaBroker()},
		GroupID:     groupID,
		GroupTopics: topics,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(kafkaBroker()),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
