package main

import (
	"context" // context package is needed for Redis operations
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant_system/internal/api"     // Custom package for API handlers
	"restaurant_system/internal/config"  // Custom package for configuration
	"restaurant_system/internal/events"  // Order event publishing
	"restaurant_system/internal/logging" // Logger setup
	"restaurant_system/internal/service" // Business operations
	"restaurant_system/internal/store"   // Database connection
	"restaurant_system/internal/utils"   // Redis cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.IsProd) // Setup logger

	db, err := store.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if cfg.DBDriver == "sqlite" {
		// A fresh SQLite file has no schema yet
		if err := store.Migrate(db); err != nil {
			logrus.Fatalf("failed to migrate: %v", err)
		}
	}

	// Setup Redis client when configured; without it every cache lookup misses
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}
	cache := utils.NewCache(redisClient)

	// Setup the event publisher
	var publisher events.Publisher = events.LogPublisher{}
	if cfg.AMQPURL != "" {
		rabbit, err := events.DialRabbit(cfg.AMQPURL)
		if err != nil {
			logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbit
	}
	defer publisher.Close()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		DB:        db,
		Accounts:  service.NewAccounts(db, cfg.JWTSecret, cfg.TokenTTL),
		Orders:    service.NewOrders(db, publisher),
		Addresses: service.NewAddresses(db),
		Menu:      service.NewMenu(db, cache),
		Settings:  service.NewSettings(db, cache),
		JWTSecret: cfg.JWTSecret,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithField("error", err.Error()).Error("Forced shutdown")
	}
}
