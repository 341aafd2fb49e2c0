package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/adapter/cli"
	"github.com/luminahr/talentscope/adapter/cli/assign"
	"github.com/luminahr/talentscope/adapter/cli/gaps"
	"github.com/luminahr/talentscope/adapter/cli/score"
	"github.com/luminahr/talentscope/adapter/cli/trends"
	"github.com/luminahr/talentscope/internal/app"
	"github.com/luminahr/talentscope/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// In development without .env, use defaults
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	// Update logger level based on config
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	// Try to initialize the full container
	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger, nil)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
			// In development, allow CLI to run without database
			cliApp = nil
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = cli.NewApp(
			container.ScoringService,
			container.SkillsService,
			container.TrendsService,
			container.AssignmentService,
		)

		if cfg.OrganizationID != "" {
			orgID, err := uuid.Parse(cfg.OrganizationID)
			if err != nil {
				logger.Error("invalid TALENTSCOPE_ORG_ID", "error", err)
				os.Exit(1)
			}
			cliApp.SetCurrentOrgID(orgID)
		}
	}

	// Set the CLI app
	cli.SetApp(cliApp)

	// Register commands
	cli.AddCommand(score.Cmd)
	cli.AddCommand(gaps.Cmd)
	cli.AddCommand(trends.Cmd)
	cli.AddCommand(assign.Cmd)

	// Execute CLI
	cli.Execute()
}
