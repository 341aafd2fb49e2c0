package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/pkg/observability"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
)

type startedAtKey struct{}

var rootCmd = &cobra.Command{
	Use:   "talentscope",
	Short: "TalentScope - Workforce Analytics Engine",
	Long: `TalentScope analyzes an organization's task and skill data to produce
productivity scores, skill-gap reports, performance trend predictions,
and task assignment recommendations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Every invocation gets a correlation ID so log lines from the
		// services invoked below can be tied back to the command.
		ctx := observability.WithCorrelationID(cmd.Context(), "")
		ctx = contextWithStart(ctx, time.Now())
		cmd.SetContext(ctx)

		log().Info("command start",
			"command", cmd.CommandPath(),
			"correlation_id", observability.CorrelationIDFromContext(ctx),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		startedAt, ok := ctx.Value(startedAtKey{}).(time.Time)
		if !ok {
			return
		}
		log().Info("command end",
			"command", cmd.CommandPath(),
			"correlation_id", observability.CorrelationIDFromContext(ctx),
			"duration_ms", time.Since(startedAt).Milliseconds(),
		)
	},
}

func contextWithStart(ctx context.Context, at time.Time) context.Context {
	return context.WithValue(ctx, startedAtKey{}, at)
}

func log() *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand registers a command group on the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the logger used for command lifecycle logging.
func SetLogger(l *slog.Logger) {
	logger = l
}
