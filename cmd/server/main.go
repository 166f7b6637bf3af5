package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/app"
	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/config"
	"github.com/teetime/teetime/internal/controller"
	"github.com/teetime/teetime/internal/controller/rest"
	"github.com/teetime/teetime/internal/pricing"
	"github.com/teetime/teetime/internal/repository"
	"github.com/teetime/teetime/internal/repository/memory"
	"github.com/teetime/teetime/internal/service"
	"github.com/teetime/teetime/migrations"
)

type repositories struct {
	users    service.UserRepository
	players  service.PlayerRepository
	bookings service.BookingRepository
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer repos.close()

	cat := catalog.Default()
	engine := pricing.NewEngine(cat)

	userService := service.NewUserService(repos.users, logger)
	playerService := service.NewPlayerService(repos.players, logger)
	bookingService := service.NewBookingService(repos.bookings, repos.players, cat, engine, logger)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(ctx, playerService, bookingService, logger); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	authLimiter := rest.NewRateLimiter(cfg.AuthRateLimit)
	scheduler := app.NewScheduler(authLimiter, time.Minute, 10*time.Minute, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := rest.NewHandler(userService, playerService, bookingService, cat, logger)
	router := handler.Router(rest.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		AuthLimiter:    authLimiter,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	if cfg.TelegramToken != "" {
		if err := startBot(ctx, cfg.TelegramToken, cat, bookingService, logger); err != nil {
			logger.Error("Telegram bot disabled", zap.Error(err))
		}
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shut down", zap.Error(err))
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories, error) {
	if !cfg.UsesDatabase() {
		logger.Info("Using in-memory storage")
		return &repositories{
			users:    memory.NewUserRepository(),
			players:  memory.NewPlayerRepository(),
			bookings: memory.NewBookingRepository(),
			close:    func() {},
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Using Postgres storage")
	return &repositories{
		users:    repository.NewUserRepository(pool),
		players:  repository.NewPlayerRepository(pool, logger),
		bookings: repository.NewBookingRepository(pool),
		close:    pool.Close,
	}, nil
}

// startBot runs the Telegram front end in the background until ctx ends.
func startBot(ctx context.Context, token string, cat *catalog.Catalog, bookings *service.BookingService, logger *zap.Logger) error {
	b, err := bot.New(token)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, cat, bookings, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return err
	}

	go botController.Start(ctx)
	return nil
}
