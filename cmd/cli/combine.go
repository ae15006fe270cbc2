package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/coursescheduling/pkg/config"
	"github.com/limaJavier/coursescheduling/pkg/csvio"
	"github.com/limaJavier/coursescheduling/pkg/input"
	"github.com/limaJavier/coursescheduling/pkg/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	validFormats = []string{"json", "csv"}
	combinators  = map[string]func(model.ConflictChecker) model.Combinator{
		config.StrategyBacktracking: model.NewBacktrackingCombinator,
		config.StrategyStack:        model.NewStackCombinator,
	}
)

type combineOptions struct {
	file     string
	out      string
	format   string
	strategy string
	maxSpace uint64
}

type selectionOutput struct {
	Course string         `json:"course"`
	Color  string         `json:"color,omitempty"`
	Group  input.RawGroup `json:"group"`
}

func newCombineCommand(app *application) *cobra.Command {
	options := combineOptions{}

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Print every conflict-free combination of the input courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.combine(cmd, options)
		},
	}

	cmd.Flags().StringVarP(&options.file, "file", "f", "", "Path to the input file (.csv or .json)")
	cmd.Flags().StringVarP(&options.out, "out", "o", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	cmd.Flags().StringVar(&options.format, "format", "json", "Output format. Allowed values are: \"json\", \"csv\"")
	cmd.Flags().StringVar(&options.strategy, "strategy", "", "Search strategy, overrides SEARCH_STRATEGY. Allowed values are: \"backtracking\", \"stack\"")
	cmd.Flags().Uint64Var(&options.maxSpace, "max-space", 0, "Largest accepted search space (product of group counts), overrides SEARCH_MAX_SPACE")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (app *application) combine(cmd *cobra.Command, options combineOptions) error {
	//** Resolve arguments (flags take precedence over configuration)
	strategy := app.cfg.Search.Strategy
	if options.strategy != "" {
		strategy = strings.ToLower(options.strategy)
	}
	maxSpace := app.cfg.Search.MaxSpace
	if cmd.Flags().Changed("max-space") {
		maxSpace = options.maxSpace
	}
	format := strings.ToLower(options.format)

	//** Validate arguments
	newCombinator, ok := combinators[strategy]
	if !ok {
		return fmt.Errorf("%v is not a valid strategy", strategy)
	} else if !slices.Contains(validFormats, format) {
		return fmt.Errorf("%v is not a valid format", format)
	} else if maxSpace == 0 {
		return errors.New("max-space must be greater than 0")
	}

	//** Extract input
	courses, err := app.loadCourses(options.file)
	if err != nil {
		return err
	}
	space, err := guard(courses, maxSpace)
	if err != nil {
		app.logger.Warn("input rejected",
			zap.String("run_id", app.runID.String()),
			zap.Int("courses", len(courses)),
			zap.Uint64("search_space", space),
			zap.Uint64("max_space", maxSpace),
		)
		return err
	}

	//** Build combinations
	combinator := newCombinator(model.NewConflictChecker())
	startedAt := time.Now()
	combinations := combinator.Combine(courses)
	duration := time.Since(startedAt)

	//** Verify combinations correctness
	if !combinator.Verify(combinations, courses) {
		return errors.New("verification failed")
	}

	app.logger.Info("combinations built",
		zap.String("run_id", app.runID.String()),
		zap.String("strategy", strategy),
		zap.Int("courses", len(courses)),
		zap.Uint64("search_space", space),
		zap.Int("combinations", len(combinations)),
		zap.Duration("duration", duration),
	)

	//** Write output
	if options.out == "" {
		return app.writeCombinations(cmd.OutOrStdout(), format, combinations)
	}

	outFile, err := os.Create(options.out)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := app.writeCombinations(outFile, format, combinations); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}

func (app *application) writeCombinations(out io.Writer, format string, combinations []model.Combination) error {
	if format == "csv" {
		return csvio.ExportCombinations(out, combinations, app.cfg.CSV.Delimiter)
	}

	output := lo.Map(combinations, func(combination model.Combination, _ int) []selectionOutput {
		return lo.Map(combination, func(selection model.Selection, _ int) selectionOutput {
			return selectionOutput{
				Course: selection.Course.Name,
				Color:  selection.Course.Color,
				Group:  input.FromGroup(*selection.Group),
			}
		})
	})

	outputJson, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(outputJson)); err != nil {
		return fmt.Errorf("an error occurred while writing the output: %w", err)
	}
	return nil
}
