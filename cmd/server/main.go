package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/ignite/newsletter/internal/api"
	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/emailclient"
	"github.com/ignite/newsletter/internal/pkg/logger"
	"github.com/ignite/newsletter/internal/pkg/metrics"
	"github.com/ignite/newsletter/internal/repository/memory"
	"github.com/ignite/newsletter/internal/repository/postgres"
	"github.com/ignite/newsletter/internal/service/sending"
	"github.com/ignite/newsletter/internal/service/subscription"
	"github.com/ignite/newsletter/internal/ses"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	logger.SetRedactPII(cfg.Log.Redact())

	senderEmail, err := cfg.EmailClient.Sender()
	if err != nil {
		log.Fatalf("Invalid email_client.sender_email: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, pinger, closeDB, err := openRepository(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeDB()

	sender, err := openSender(ctx, cfg.EmailClient, senderEmail)
	if err != nil {
		log.Fatalf("Failed to initialize email transport: %v", err)
	}

	notifier := subscription.NewConfirmationNotifier(sender, cfg.Application.ConfirmationLink)
	svc := subscription.NewService(repo, notifier)

	server := api.NewServer(cfg.Application, api.Dependencies{
		Subscriptions: svc,
		Metrics:       metrics.NewManager(),
		DB:            pinger,
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server", "addr", cfg.Application.Address(),
			"storage", cfg.Storage.Type, "transport", cfg.EmailClient.Transport)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	logger.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// openRepository returns the configured subscription store, the pinger used
// by the readiness probe (nil for memory), and a close func.
func openRepository(ctx context.Context, sc config.StorageConfig, dc config.DatabaseConfig) (subscription.Repository, api.Pinger, func(), error) {
	switch sc.Type {
	case "memory":
		logger.Warn("Using in-memory subscription store; data is lost on restart")
		return memory.NewSubscriptionRepo(), nil, func() {}, nil
	case "postgres":
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage type %q", sc.Type)
	}

	db, err := sql.Open("postgres", dc.DSN())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(dc.MaxOpenConns)
	db.SetMaxIdleConns(dc.MaxIdleConns)
	db.SetConnMaxLifetime(dc.ConnMaxLifetime())

	// The pool connects lazily. A failed ping is logged and the server still
	// starts; readiness reports the database as down.
	repo := postgres.NewSubscriptionRepo(db)
	pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
	defer pingCancel()
	if err := repo.Ping(pingCtx); err != nil {
		logger.Warn("Database not reachable at startup", "error", err)
	} else {
		logger.Info("Connected to database")
	}

	return repo, repo, func() { db.Close() }, nil
}

func openSender(ctx context.Context, ec config.EmailClientConfig, from domain.SubscriberEmail) (sending.Sender, error) {
	switch ec.Transport {
	case string(domain.TransportHTTP):
		if ec.BaseURL == "" {
			return nil, fmt.Errorf("email_client.base_url is required for the http transport")
		}
		return emailclient.NewClient(ec, from), nil
	case string(domain.TransportSES):
		return ses.NewSender(ctx, ec, from)
	default:
		return nil, fmt.Errorf("unknown email transport %q", ec.Transport)
	}
}
