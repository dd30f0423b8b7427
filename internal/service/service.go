package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	nexus "github.com/talx-hub/nexus-sdk"
	"github.com/talx-hub/nexus-sdk/internal/api/handlers"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/repo"
	"github.com/talx-hub/nexus-sdk/internal/router"
	"github.com/talx-hub/nexus-sdk/internal/service/config"
	"github.com/talx-hub/nexus-sdk/internal/service/notifier"
	"github.com/talx-hub/nexus-sdk/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

var ErrNoSecret = errors.New("secret key is required to sign player tokens")

// App is the wired demo backend.
type App struct {
	Server   *http.Server
	Notifier *notifier.Notifier
	Client   *nexus.Client
}

// New wires the demo backend. The Nexus client is created without keys when
// none are configured, so /ping reports 503 until they are provided.
func New(cfg *config.Config, log *slog.Logger, opts ...nexus.Option) (*App, error) {
	if cfg.SecretKey == "" {
		return nil, ErrNoSecret
	}

	client := nexus.NewClient(append([]nexus.Option{nexus.WithLogger(log)}, opts...)...)
	if cfg.NexusPublicKey != "" || cfg.NexusPrivateKey != "" {
		baseURL := cfg.NexusBaseURL
		if baseURL == "" {
			baseURL = nexus.Environment(cfg.NexusEnvironment).BaseURL()
		}
		err := client.SetConfig(nexus.Config{
			PublicKey:  cfg.NexusPublicKey,
			PrivateKey: cfg.NexusPrivateKey,
			BaseURL:    baseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to configure nexus client: %w", err)
		}
	}

	players := repo.NewPlayerRepository(log)
	n := notifier.New(client.Attribution, cfg.NotifyConcurrency, cfg.NexusGroupID, log)

	rr := router.New(cfg.SecretKey, log)
	rr.SetRouter(&struct {
		*handlers.AuthHandler
		*handlers.PurchaseHandler
		*handlers.CreatorHandler
		*handlers.HealthHandler
	}{
		AuthHandler:     handlers.NewAuthHandler(players, log, cfg.SecretKey),
		PurchaseHandler: handlers.NewPurchaseHandler(players, n, log),
		CreatorHandler:  handlers.NewCreatorHandler(client.Manage, players, cfg.NexusGroupID, log),
		HealthHandler:   handlers.NewHealthHandler(client),
	})

	const readHeaderTimeout = 5 * time.Second
	return &App{
		Server: &http.Server{
			Addr:              cfg.RunAddr,
			Handler:           rr.GetRouter(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		Notifier: n,
		Client:   client,
	}, nil
}

// Shutdown stops the server first so no purchase can schedule a send,
// then drains the notifier.
func (a *App) Shutdown(ctx context.Context) error {
	return errors.Join(a.Server.Shutdown(ctx), a.Notifier.Shutdown(ctx))
}

func RunServer() {
	bootLog := slog.Default()
	cfg := config.NewBuilder(bootLog).
		FromDotenv().
		FromEnv().
		FromFlags().
		GetConfig()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	app, err := New(cfg, log)
	if err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"failed to init service",
			slog.Any(model.KeyLoggerError, err),
		)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, slog.LevelInfo, "server started", slog.String("addr", cfg.RunAddr))
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.LogAttrs(context.Background(),
				slog.LevelError,
				"listen and serve error",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = app.Shutdown(shutdownCtx); err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"failed to shut down gracefully",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
