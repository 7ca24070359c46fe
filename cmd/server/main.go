package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/space-booking/internal/config"
	"github.com/iliyamo/space-booking/internal/database"
	"github.com/iliyamo/space-booking/internal/handler"
	"github.com/iliyamo/space-booking/internal/logger"
	"github.com/iliyamo/space-booking/internal/middleware"
	"github.com/iliyamo/space-booking/internal/queue"
	"github.com/iliyamo/space-booking/internal/repository"
	"github.com/iliyamo/space-booking/internal/router"
)

func main() {
	// A missing .env is fine in production where real env vars are set.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and rate limiter become
	// pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Log.Warn("redis unavailable, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	spaces := repository.NewSpaceRepo(db)
	bookings := repository.NewBookingRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	spaceH := handler.NewSpaceHandler(spaces, bookings)
	requestH := handler.NewRequestHandler(bookings, spaces, users)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterSpaces(e, spaceH, cfg.JWTSecret, cacheMW)
	router.RegisterRequests(e, requestH, cfg.JWTSecret)

	// The consumer keeps its own reconnect loop; a broker outage must not
	// keep the API from serving.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			logger.Log.Error("booking consumer stopped", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Log.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
