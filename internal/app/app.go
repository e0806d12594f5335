package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/AmenityBooker/internal/cache"
	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/stpnv0/AmenityBooker/internal/config"
	"github.com/stpnv0/AmenityBooker/internal/handler"
	"github.com/stpnv0/AmenityBooker/internal/middleware"
	"github.com/stpnv0/AmenityBooker/internal/notification"
	"github.com/stpnv0/AmenityBooker/internal/repository"
	"github.com/stpnv0/AmenityBooker/internal/router"
	"github.com/stpnv0/AmenityBooker/internal/scheduler"
	"github.com/stpnv0/AmenityBooker/internal/scheduling"
	"github.com/stpnv0/AmenityBooker/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	events     *notification.EventPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"AmenityBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis подключает кэш амэнити. Недоступный Redis не мешает старту:
// кэш сам уходит в Postgres при ошибках.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis address not set, amenity cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "redis ping failed, continuing with degraded cache",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
			logger.String("addr", a.cfg.Redis.Addr),
		)
	}

	a.redis = client
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}
	policy := service.Policy{
		Location:    loc,
		MaxDuration: a.cfg.Booking.MaxDuration,
	}
	clk := clock.NewSystem()

	amenityRepo := repository.NewAmenityRepo(a.db)
	reservationRepo := repository.NewReservationRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	// typed nil *redis.Client would not read as a nil client
	var amenityCache *cache.AmenityCache
	if a.redis != nil {
		amenityCache = cache.NewAmenityCache(a.redis, amenityRepo, a.cfg.Redis.CacheTTL, a.log)
	} else {
		amenityCache = cache.NewAmenityCache(nil, amenityRepo, a.cfg.Redis.CacheTTL, a.log)
	}

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, loc, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	n := notification.NewFanout(tg)
	if a.cfg.AMQP.URL != "" {
		a.events, err = notification.NewEventPublisher(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange, a.log)
		if err != nil {
			return fmt.Errorf("init event publisher: %w", err)
		}
		n = notification.NewFanout(tg, a.events)
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "reservation events enabled",
			logger.String("exchange", a.cfg.AMQP.Exchange),
		)
	}

	generator := scheduling.NewGenerator(a.cfg.Booking.SlotStep, a.log)

	amenityService := service.NewAmenityService(amenityRepo, amenityCache, clk, a.log)
	availabilityService := service.NewAvailabilityService(amenityCache, reservationRepo, generator, clk, policy)
	reservationService := service.NewReservationService(
		reservationRepo, amenityCache, userRepo, n, clk, policy, a.log,
	)
	userService := service.NewUserService(userRepo, clk)

	sweeper := service.NewExpirySweeper(
		reservationRepo, userRepo, n, a.cfg.Sweeper.CleanupAfter, loc, a.log,
	)
	a.scheduler = scheduler.New(sweeper, clk, a.cfg.Sweeper.Interval, a.log)

	h := handler.NewHandler(amenityService, availabilityService, reservationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Actor(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.scheduler.Stop()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.scheduler.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "expiry sweeper stopped")

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close rabbitmq",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close redis",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
