package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/contact-management/internal/config"
	"github.com/iliyamo/contact-management/internal/database"
	"github.com/iliyamo/contact-management/internal/handler"
	"github.com/iliyamo/contact-management/internal/logger"
	"github.com/iliyamo/contact-management/internal/middleware"
	"github.com/iliyamo/contact-management/internal/queue"
	"github.com/iliyamo/contact-management/internal/repository"
	"github.com/iliyamo/contact-management/internal/router"
	"github.com/iliyamo/contact-management/internal/validation"
)

func main() {
	_ = godotenv.Load() // best effort; real env vars win

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := database.Migrate(db, cfg.DBName); err != nil {
		log.Fatal().Err(err).Msg("database migrate failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; rate limiting disabled")
	}

	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)
	addressRepo := repository.NewAddressRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = router.NewErrorHandler(log)
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewUserHandler(cfg, userRepo),
		handler.NewContactHandler(contactRepo, cfg.AuditEvents),
		handler.NewAddressHandler(contactRepo, addressRepo, cfg.AuditEvents),
		handler.NewHealthHandler(db),
		userRepo,
	)

	if cfg.AuditEvents {
		go func() {
			if err := queue.StartAuditConsumer(); err != nil {
				log.Error().Err(err).Msg("audit consumer stopped")
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
