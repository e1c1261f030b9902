package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NavindyaD/cv-chat/internal/api"
	"github.com/NavindyaD/cv-chat/internal/config"
	"github.com/NavindyaD/cv-chat/internal/mailer"
	"github.com/NavindyaD/cv-chat/internal/qa"
	"github.com/NavindyaD/cv-chat/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sender mailer.Sender
	if cfg.EmailProvider == "ses" {
		var err error
		sender, err = mailer.NewSESSender(ctx, cfg.EmailRegion, cfg.EmailFrom, cfg.EmailFromName)
		if err != nil {
			log.Error("ses init failed", "error", err)
			os.Exit(1)
		}
	} else {
		sender = mailer.NewNoopSender(log)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	sessions.StartCleanup(ctx, cfg.CleanupInterval)

	stats := qa.NewQueryStats(time.Hour)

	srv := api.NewServer(sessions, sender, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting cv-chat", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
