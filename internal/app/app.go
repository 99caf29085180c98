package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	queuerepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/classification"
	"github.com/heartmarshall/docflow-backend/internal/adapter/postgres/emaillog"
	letterrepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/letter"
	"github.com/heartmarshall/docflow-backend/internal/adapter/postgres/letterevent"
	requestrepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/request"
	userrepo "github.com/heartmarshall/docflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/email"
	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/docflow-backend/internal/auth"
	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
	"github.com/heartmarshall/docflow-backend/internal/service/classification"
	"github.com/heartmarshall/docflow-backend/internal/service/intake"
	lettersvc "github.com/heartmarshall/docflow-backend/internal/service/letter"
	"github.com/heartmarshall/docflow-backend/internal/service/mailer"
	"github.com/heartmarshall/docflow-backend/internal/service/notify"
	requestsvc "github.com/heartmarshall/docflow-backend/internal/service/request"
	usersvc "github.com/heartmarshall/docflow-backend/internal/service/user"
	"github.com/heartmarshall/docflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/docflow-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until ctx
// is cancelled. The classification worker runs alongside the server and both
// stop together.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Server.Environment, nil)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Server.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
	}

	c, err := buildContainer(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(cfg, logger, c.handlers, c.jwt, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Worker.Enabled {
		g.Go(func() error {
			return c.worker.Run(gctx)
		})
	}

	err = g.Wait()
	logger.Info("application stopped")
	return err
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	return m.Up(ctx, logger)
}

// container holds the wired object graph.
type container struct {
	handlers handlers
	worker   *classification.Service
	jwt      *auth.JWTManager
}

// buildContainer wires repositories, adapters and services. Adapters whose
// credentials are missing are left nil; the services then report
// domain.ErrNotConfigured or take their fallback path.
func buildContainer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*container, error) {
	txm := postgres.NewTxManager(pool)

	requests := requestrepo.New(pool)
	letters := letterrepo.New(pool)
	letterEvents := letterevent.New(pool)
	users := userrepo.New(pool)
	emailLogs := emaillog.New(pool)
	queue := queuerepo.New(pool)

	model, err := llm.New(ctx, cfg.AI)
	if err := optional(logger, "ai", err); err != nil {
		return nil, err
	}

	// A nil *telegram.Bot must not leak into the interfaces below.
	bot, err := telegram.New(cfg.Telegram)
	if err := optional(logger, "telegram", err); err != nil {
		return nil, err
	}

	sender, err := email.New(cfg.Email)
	if err := optional(logger, "email", err); err != nil {
		return nil, err
	}

	var notifier *notify.Service
	if bot != nil {
		notifier = notify.NewService(logger, users, bot)
	} else {
		notifier = notify.NewService(logger, users, nil)
	}

	userService := usersvc.NewService(logger, users)
	aiService := ai.NewService(logger, model, requests)
	requestService := requestsvc.NewService(logger, requests, queue, txm)
	letterService := lettersvc.NewService(logger, letters, requests, letterEvents, txm, aiService, notifier, cfg.Telegram.AdminURL)
	mailService := mailer.NewService(logger, letters, letterService, emailLogs, sender, cfg.Email)
	worker := classification.NewService(logger, queue, requests, aiService, cfg.Worker)

	var intakeService *intake.Service
	if bot != nil {
		intakeService = intake.NewService(logger, userService, requests, queue, txm, bot, notifier, cfg.Telegram.AdminURL)
	} else {
		intakeService = intake.NewService(logger, userService, requests, queue, txm, nil, notifier, cfg.Telegram.AdminURL)
	}

	var jwt *auth.JWTManager
	if cfg.Auth.Enabled() {
		jwt = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	}

	adapters := map[string]bool{
		"ai":       model != nil,
		"telegram": bot != nil,
		"email":    sender != nil,
	}

	return &container{
		handlers: handlers{
			health: rest.NewHealthHandler(pool, BuildVersion(), cfg.Server.Environment, adapters),
			api: []routes{
				rest.NewRequestHandler(requestService, logger),
				rest.NewLetterHandler(letterService, logger),
				rest.NewAIHandler(aiService, logger),
				rest.NewEmailHandler(mailService, logger),
				rest.NewTelegramHandler(intakeService, logger),
			},
		},
		worker: worker,
		jwt:    jwt,
	}, nil
}

// optional tolerates a missing-credentials error from an adapter constructor
// and fails on anything else.
func optional(logger *slog.Logger, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotConfigured) {
		logger.Warn("adapter disabled", slog.String("adapter", name), slog.String("reason", err.Error()))
		return nil
	}
	return fmt.Errorf("init %s: %w", name, err)
}
