package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/NavindyaD/cv-chat/internal/config"
	"github.com/NavindyaD/cv-chat/internal/mailer"
	"github.com/NavindyaD/cv-chat/internal/mcptools"
	"github.com/NavindyaD/cv-chat/internal/qa"
	"github.com/NavindyaD/cv-chat/internal/session"
)

func main() {
	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

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

	tools := &mcptools.Tools{
		Sessions:      sessions,
		Sender:        sender,
		Stats:         qa.NewQueryStats(time.Hour),
		DefaultCVPath: cfg.CVFilePath,
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "cv-chat",
		Version: "1.0.0",
	}, nil)
	tools.Register(srv)

	log.Info("cv-chat MCP server running on stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error("mcp server", "error", err)
		os.Exit(1)
	}
}
