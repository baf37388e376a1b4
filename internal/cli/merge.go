// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-utils/internal/config"
	"github.com/MKhiriev/go-utils/internal/document"
	"github.com/MKhiriev/go-utils/internal/fetch"
	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/internal/tui"
	"github.com/MKhiriev/go-utils/internal/workers"
	"github.com/MKhiriev/go-utils/merge"
	"github.com/spf13/cobra"
)

func newMergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge BASE OVERRIDE",
		Short: "Merge an override document into a base document",
		Long: `Merge deep-merges OVERRIDE into BASE and writes the result.

BASE and OVERRIDE are JSON or TOML files; either may also be an http(s)
URL. Nested objects merge recursively, arrays and scalars are replaced
by the override, and a strategy file can pin individual paths to merge,
replace or safe behavior.

Example:
  confmerge merge base.json override.json -o merged.json
  confmerge merge https://example.com/base.json local.toml -s strategies.json
  confmerge merge base.json override.json --watch --interval 5s -o merged.json`,
		Args: cobra.ExactArgs(2),
		RunE: runMerge,
	}

	cmd.Flags().StringP("strategies", "s", "", "strategy file mapping dotted paths to merge|replace|safe (JSON or TOML)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().String("format", "", "output format, json or toml (default inferred from -o extension, else json)")
	cmd.Flags().Int("indent", 0, "spaces per indentation level, 1..8 (default 2)")
	cmd.Flags().BoolP("interactive", "i", false, "review per-path strategies on an interactive screen before writing")
	cmd.Flags().Bool("watch", false, "re-merge on an interval until interrupted")
	cmd.Flags().Duration("interval", 0, "delay between watch passes (default 2s)")
	cmd.Flags().StringP("config", "c", "", "JSON config file for the tool itself")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error (default info)")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	strategiesPath, _ := cmd.Flags().GetString("strategies")
	interactive, _ := cmd.Flags().GetBool("interactive")
	watch, _ := cmd.Flags().GetBool("watch")

	if interactive && watch {
		return errors.New("--interactive and --watch cannot be combined")
	}

	cfg, err := config.GetConfig(flagConfig(cmd, outputPath))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("confmerge")
	if interactive {
		// interactive mode owns the terminal, log lines go to a file
		log = logger.NewFileLogger("confmerge")
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	format, err := document.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	strategies, err := loadStrategies(strategiesPath, log)
	if err != nil {
		return err
	}

	run := &mergeRun{
		basePath:     args[0],
		overridePath: args[1],
		outputPath:   outputPath,
		format:       format,
		indent:       cfg.Output.Indent,
		strategies:   strategies,
		fetcher:      fetch.NewHTTPFetcher(cfg.Fetch, log),
		stdout:       cmd.OutOrStdout(),
		logger:       log,
	}

	switch {
	case interactive:
		return run.interactive(cmd.Context())
	case watch:
		return run.watch(cmd.Context(), cfg.Watch.Interval)
	default:
		return run.pass(cmd.Context())
	}
}

// flagConfig assembles the flags layer of the configuration. Unset flags
// stay at their zero values so lower-priority sources can fill them.
func flagConfig(cmd *cobra.Command, outputPath string) *config.Config {
	format, _ := cmd.Flags().GetString("format")
	indent, _ := cmd.Flags().GetInt("indent")
	interval, _ := cmd.Flags().GetDuration("interval")
	logLevel, _ := cmd.Flags().GetString("log-level")
	configPath, _ := cmd.Flags().GetString("config")

	if format == "" && outputPath != "" {
		format = string(document.DetectFormat(outputPath))
	}

	return &config.Config{
		Output:       config.Output{Format: format, Indent: indent},
		Watch:        config.Watch{Interval: interval},
		Log:          config.Log{Level: logLevel},
		JSONFilePath: configPath,
	}
}

func loadStrategies(path string, log *logger.Logger) (merge.StrategyTable, error) {
	if path == "" {
		return nil, nil
	}

	table, unknown, err := document.LoadStrategies(path)
	if err != nil {
		return nil, fmt.Errorf("error loading strategy file: %w", err)
	}
	for _, p := range unknown {
		log.Warn().Str("path", p).Msg("unknown strategy tag, path keeps the default behavior")
	}

	return table, nil
}

// mergeRun carries one configured merge invocation through its passes.
type mergeRun struct {
	basePath     string
	overridePath string
	outputPath   string
	format       document.Format
	indent       int
	strategies   merge.StrategyTable
	fetcher      fetch.Fetcher
	stdout       io.Writer
	logger       *logger.Logger
}

// load resolves path either over HTTP or from the local filesystem.
func (r *mergeRun) load(ctx context.Context, path string) (map[string]any, error) {
	if fetch.IsURL(path) {
		return r.fetcher.Fetch(ctx, path)
	}
	return document.Load(path)
}

// pass executes one full merge: load both documents, merge, write.
func (r *mergeRun) pass(ctx context.Context) error {
	base, err := r.load(ctx, r.basePath)
	if err != nil {
		return fmt.Errorf("error loading base document: %w", err)
	}

	override, err := r.load(ctx, r.overridePath)
	if err != nil {
		return fmt.Errorf("error loading override document: %w", err)
	}

	merged := merge.MergeWith(base, override, r.strategies)
	return r.writeOut(merged)
}

func (r *mergeRun) writeOut(doc map[string]any) error {
	if r.outputPath == "" {
		return document.Save(r.stdout, doc, r.format, r.indent)
	}

	if err := document.SaveFile(r.outputPath, doc, r.format, r.indent); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	r.logger.Debug().Str("path", r.outputPath).Msg("merged document written")

	return nil
}

// interactive loads both documents once and hands them to the review
// screen. The result shown on screen at exit is what gets written.
func (r *mergeRun) interactive(ctx context.Context) error {
	base, err := r.load(ctx, r.basePath)
	if err != nil {
		return fmt.Errorf("error loading base document: %w", err)
	}

	override, err := r.load(ctx, r.overridePath)
	if err != nil {
		return fmt.Errorf("error loading override document: %w", err)
	}

	var write tui.WriteFunc
	if r.outputPath != "" {
		write = func(doc map[string]any) error {
			return document.SaveFile(r.outputPath, doc, r.format, r.indent)
		}
	}

	review := tui.NewReview(base, override, r.strategies, write, r.logger)
	merged, _, err := review.Run()
	if err != nil {
		return err
	}

	return r.writeOut(merged)
}

// watch re-merges on the configured interval until SIGINT or SIGTERM.
// The first pass runs before the ticker starts.
func (r *mergeRun) watch(ctx context.Context, interval time.Duration) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		r.logger.Info().Msg("stopping watch mode")
		cancel()
	}()

	job := workers.NewWatchJob(r.pass, r.logger)
	workers.NewWorkers(job).Run()
	job.Start(runCtx, interval)
	<-runCtx.Done()
	job.Stop()

	return nil
}
