package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	commonsHttp "github.com/omniful/go_commons/http"
	logger "github.com/omniful/go_commons/log"

	"github.com/omniful/wms-dashboard/internal/cache"
	"github.com/omniful/wms-dashboard/internal/config"
	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/internal/upstream"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

func main() {
	_ = godotenv.Load()

	// Initialize config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config: " + err.Error())
		os.Exit(1)
	}

	// Initialize Redis client backing the demo store
	redisClient := initializeRedis(cfg)
	store := demo.NewStore(redisClient)

	if cfg.DevMode || cfg.DemoFallbackOnError {
		if redisClient == nil {
			logger.Error("Demo data requires Redis; cannot continue without it")
			os.Exit(1)
		}
		if err := store.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed demo dataset: " + err.Error())
			os.Exit(1)
		}
		logger.Info("Demo dataset seeded")
	}

	// Initialize the upstream API client
	api := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.TokenSource())

	// Initialize server with custom timeouts
	server := commonsHttp.InitializeServer(
		cfg.Server.Port, // listen address
		10*time.Second,  // read timeout
		10*time.Second,  // write timeout
		70*time.Second,  // idle timeout
		false,           // TLS disabled
	)

	// Create a router group for API v1
	apiGroup := server.Group("/api/v1")
	lookupCache := cache.New(redisClient, 60*time.Second)
	setupRoutes(apiGroup, api, store, lookupCache, service.Options{
		DevMode:         cfg.DevMode,
		FallbackOnError: cfg.DemoFallbackOnError,
	})

	// Basic routes
	server.GET("/health", func(c *gin.Context) {
		redisStatus := "disconnected"
		if redisClient != nil {
			if _, err := redisClient.Ping(context.Background()).Result(); err == nil {
				redisStatus = "connected"
			}
		}

		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   constants.ServiceName,
			"timestamp": time.Now().Format(time.RFC3339),
			"redis":     redisStatus,
			"dev_mode":  cfg.DevMode,
			"upstream":  cfg.Upstream.BaseURL,
			"version":   constants.ServiceVersion,
		})
	})

	server.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "WMS dashboard service is running",
			"version": constants.ServiceVersion,
			"endpoints": []string{
				constants.EndpointHealth,
				constants.EndpointVariants,
				constants.EndpointFamilies,
				constants.EndpointSuppliers,
				constants.EndpointWarehouses,
				constants.EndpointInventory,
				constants.EndpointPurchaseOrders,
			},
		})
	})

	// Start the server in a goroutine
	go func() {
		if err := server.StartServer(constants.ServiceName); err != nil {
			logger.Error("Failed to start server: " + err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: ", err)
		os.Exit(1)
	}

	logger.Info("Server exiting")
}

func initializeRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test the connection
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logger.Error("Failed to connect to Redis: " + err.Error())
		return nil
	}

	logger.Info("Successfully connected to Redis")
	return client
}
