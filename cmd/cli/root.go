package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/limaJavier/coursescheduling/pkg/config"
	"github.com/limaJavier/coursescheduling/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application holds what every command needs once the configuration has been loaded
type application struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
	runID      uuid.UUID
	startedAt  time.Time
}

func newRootCommand() *cobra.Command {
	app := &application{}

	root := &cobra.Command{
		Use:   "combinations",
		Short: "Enumerate conflict-free course schedules",
		Long: `combinations reads a list of courses, each offered in several groups with a weekly time pattern,
and prints every way to pick exactly one group per course such that no two picked groups overlap.

The amount of work grows with the product of the group counts of all courses; inputs exceeding
the configured search space (SEARCH_MAX_SPACE or --max-space) are rejected before searching.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configFile)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("cannot build logger: %w", err)
			}

			app.cfg = cfg
			app.logger = log
			app.runID = uuid.New()
			app.startedAt = time.Now()
			app.logger.Debug("command start",
				zap.String("command", cmd.CommandPath()),
				zap.String("run_id", app.runID.String()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.logger.Debug("command end",
				zap.String("command", cmd.CommandPath()),
				zap.String("run_id", app.runID.String()),
				zap.Duration("duration", time.Since(app.startedAt)),
			)
			_ = app.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&app.configFile, "config", "c", "", "config file path (defaults to .env in the working directory)")
	root.AddCommand(newCombineCommand(app), newSpaceCommand(app))
	return root
}
