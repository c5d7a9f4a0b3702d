package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/picklesmvr/mvr-v1/auth"
	"github.com/picklesmvr/mvr-v1/cache"
	"github.com/picklesmvr/mvr-v1/config"
	"github.com/picklesmvr/mvr-v1/routes"
	"github.com/picklesmvr/mvr-v1/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Datastore is opened at process start and closed at process stop;
	// everything downstream receives the handle explicitly.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := store.Connect(ctx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("❌ DB disconnect failed: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)
	if err := store.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("❌ Index creation failed: %v", err)
	}
	stores := store.NewMongoStores(db)

	// Cart cache is optional; without REDIS_ADDR every read goes straight
	// to the datastore.
	var cartCache cache.CartCache = cache.Disabled{}
	if cfg.RedisAddr != "" {
		cartCache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Printf("✅ Cart cache enabled (%s)", cfg.RedisAddr)
	}

	provider := auth.NewProviderClient(cfg.AuthURL)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, stores, provider, cartCache, cfg.SessionTTL)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
