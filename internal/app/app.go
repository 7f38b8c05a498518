package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-redemption/internal/broker"
	"github.com/denmor86/ya-redemption/internal/config"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/network/router"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/denmor86/ya-redemption/internal/storage"
	"github.com/denmor86/ya-redemption/internal/throttle"
	"github.com/denmor86/ya-redemption/internal/worker"
)

// App - собранный сервис: хранилище, сервисы, планировщик выплат и http сервер
type App struct {
	Config    config.Config
	Storage   storage.IStorage
	Publisher broker.Publisher
	Worker    *worker.SettlementWorker
	Router    *router.Router
	closers   []func() error
}

// NewApp - сборка зависимостей по настройкам
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	if cfg.Server.DatabaseDSN == "" {
		logger.Warn("Database DSN is empty, using in-memory storage")
		app.Storage = storage.NewMemoryStorage()
	} else {
		pg, err := storage.NewPostgresStorage(ctx, cfg.Server.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to init storage: %w", err)
		}
		app.Storage = pg
	}
	app.closers = append(app.closers, app.Storage.Close)

	app.Publisher = broker.NewPublisher(cfg.Server.AMQPURL)
	app.closers = append(app.closers, func() error {
		app.Publisher.Close()
		return nil
	})

	var limiter throttle.Limiter
	if cfg.Server.RedisAddr != "" {
		redisClient, err := throttle.NewRedisClient(cfg.Server.RedisAddr)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		app.closers = append(app.closers, redisClient.Close)
		limiter = throttle.NewRedisLimiter(redisClient, "redemption:create", cfg.Redemption.CreateLimit, cfg.Redemption.CreateLimitWindow)
	}

	rules, err := services.NewRules(cfg.Redemption)
	if err != nil {
		app.Close()
		return nil, err
	}

	ledger := services.NewLedger(app.Storage)
	redemptions := services.NewRedemptions(app.Storage, ledger, app.Publisher, limiter, rules)
	gateway := services.NewPayoutService(cfg.Gateway)

	app.Worker = worker.NewSettlementWorker(redemptions, gateway, app.Publisher, cfg.Settlement)
	app.Router = &router.Router{
		TokenAuth:   router.NewTokenAuth(cfg.Server.JWTSecret),
		Ledger:      ledger,
		Redemptions: redemptions,
		Status:      services.NewReconciler(redemptions, gateway),
		Settlement:  app.Worker,
	}
	return app, nil
}

// Close - освобождение ресурсов в обратном порядке
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func Run(config config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error close resources", err.Error())
		}
	}()

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: app.Router.HandleRouter(),
	}
	if err := app.Worker.Start(ctx); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server on", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	// ждём текущий проход выплат: начатые вызовы шлюза не прерываются
	app.Worker.Stop()
	logger.Info("Server stopped")
	return nil
}
