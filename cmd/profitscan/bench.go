package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ProfitScanner/internal/bench"
	"ProfitScanner/internal/collector"
	"ProfitScanner/internal/config"
	"ProfitScanner/internal/metrics"
	"ProfitScanner/internal/notifier"
	"ProfitScanner/internal/recorder"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the scan over random series of increasing size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			runner, err := a.newRunner(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if cfg.Metrics.Addr != "" {
				srv := metrics.Serve(cfg.Metrics.Addr, a.log)
				defer srv.Close()
				a.log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics up")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, notifier.FormatBanner(runner.Options.RunsPerSize))
			report, err := runner.Run(ctx)
			if err != nil {
				return fmt.Errorf("run benchmark: %w", err)
			}
			fmt.Fprint(out, notifier.FormatBenchReport(report))

			rec := recorder.Recorder(recorder.NewNoopRecorder())
			if a.log.GetLevel() <= zerolog.DebugLevel {
				rec = recorder.NewLogRecorder(a.log)
			}
			defer rec.Close()
			return rec.RecordReport(report)
		},
	}

	cmd.Flags().IntSlice("sizes", nil, "Comma-separated series sizes (default from config)")
	cmd.Flags().Int("runs", 0, "Timed runs per size (default from config)")
	cmd.Flags().Int("min", 0, "Smallest delta, inclusive")
	cmd.Flags().Int("max", 0, "Largest delta, exclusive")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 for time-based")
	return cmd
}

// loadConfig reads the config file and applies bench flag overrides.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		a.setLogger(cfg.Log.Level)
	}

	flags := cmd.Flags()
	if flags.Lookup("sizes") != nil && flags.Changed("sizes") {
		cfg.Bench.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Lookup("runs") != nil && flags.Changed("runs") {
		cfg.Bench.Runs, _ = flags.GetInt("runs")
	}
	if flags.Lookup("min") != nil && flags.Changed("min") {
		cfg.Bench.Min, _ = flags.GetInt("min")
	}
	if flags.Lookup("max") != nil && flags.Changed("max") {
		cfg.Bench.Max, _ = flags.GetInt("max")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Bench.Seed, _ = flags.GetInt64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (a *app) newRunner(cfg *config.Config) (*bench.Runner, error) {
	fetcher, err := collector.NewRandomFetcher(cfg.Bench.Min, cfg.Bench.Max, cfg.Bench.Seed)
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}
	runner := bench.NewRunner(fetcher, bench.Options{Sizes: cfg.Bench.Sizes, RunsPerSize: cfg.Bench.Runs}, a.log)
	runner.Observer = metrics.Observer{}
	return runner, nil
}
