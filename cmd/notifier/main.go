// cmd/notifier/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"go.uber.org/zap"

	"salt-notifier/internal/common/config"
	"salt-notifier/internal/common/database"
	"salt-notifier/internal/common/httpclient"
	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/common/observability"
	"salt-notifier/internal/dispatch"
	"salt-notifier/internal/email/render"
	"salt-notifier/internal/email/sender"
	"salt-notifier/internal/scheduler"
	"salt-notifier/internal/server"
	"salt-notifier/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func buildSender(ctx context.Context, cfg *config.Config, log logger.Logger, zapLog *zap.Logger) sender.Sender {
	switch cfg.Email.Provider {
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Email.AWS.Region))
		if err != nil {
			zapLog.Fatal("aws config load failed", zap.Error(err))
		}
		zapLog.Info("Using SES email provider", zap.String("region", cfg.Email.AWS.Region))
		return sender.NewSESSender(ses.NewFromConfig(awsCfg), log)
	default:
		client := httpclient.NewClient(time.Duration(cfg.Email.Resend.Timeout) * time.Millisecond)
		zapLog.Info("Using Resend email provider", zap.String("endpoint", cfg.Email.Resend.Endpoint))
		return sender.NewResendSender(client, cfg.Email.Resend.APIKey, cfg.Email.Resend.Endpoint, log)
	}
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting notification dispatcher...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("salt-notifier")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry (only needed for the scheduler's run lock) ---
	var rd *database.RedisClient
	if cfg.Scheduler.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			rd, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rd.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rd.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Wire the pipeline ---
	st := store.NewPostgresStore(pg.GetDB(), log)
	dispatcher := dispatch.New(
		st,
		buildSender(ctx, cfg, log, zapLog),
		render.New(),
		obs,
		log,
		dispatch.Config{
			From:       cfg.Email.From,
			BatchLimit: cfg.Dispatch.BatchLimit,
		},
	)

	// --- Scheduler ---
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(dispatcher, rd.GetClient(), log, cfg.Scheduler)
		if err := sched.Start(); err != nil {
			zapLog.Fatal("scheduler start failed", zap.Error(err))
		}
		defer sched.Stop()
		zapLog.Info("Scheduler started")
	}

	// --- HTTP Server ---
	var redisPinger server.Pinger
	if rd != nil {
		redisPinger = rd
	}
	srv := server.New(dispatcher, pg, redisPinger, log)

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Handler(),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Notification dispatcher stopped")
}
