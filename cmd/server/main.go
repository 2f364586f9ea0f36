package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/thamir0022/hueify/internal/config"
	"github.com/thamir0022/hueify/internal/database"
	"github.com/thamir0022/hueify/internal/handler"
	"github.com/thamir0022/hueify/internal/middleware"
	"github.com/thamir0022/hueify/internal/queue"
	"github.com/thamir0022/hueify/internal/repository"
	"github.com/thamir0022/hueify/internal/router"
	queue_publisher "github.com/thamir0022/hueify/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	// Redis is optional: without it the limiter and the history cache are off.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and history cache disabled")
	}

	users := repository.NewUserRepo(db)
	history := repository.NewHistoryRepo(db, rdb, config.LoadHistoryCacheConfig())

	auth := handler.NewAuthHandler(cfg, users)
	hist := handler.NewHistoryHandler(history)
	hist.Publish = queue_publisher.PublishColorAdded

	// Background consumer writing the color activity log. Runs its own
	// reconnect loop; a missing broker only costs the activity log.
	go func() {
		if err := queue.StartColorConsumer(); err != nil {
			log.Printf("color-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, limiter)
	router.RegisterHistory(e, hist, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
