package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ProfitScanner/internal/metrics"
	"ProfitScanner/internal/recorder"
	"ProfitScanner/internal/scheduler"
)

func newScheduleCmd(a *app) *cobra.Command {
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the benchmark on the configured cron expression until interrupted",
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

			rec := recorder.NewLogRecorder(a.log)
			defer rec.Close()

			sched := scheduler.NewScheduler(ctx, runner, rec, cmd.OutOrStdout(), a.log)
			if err := sched.Register(cfg.Schedule.BenchCron); err != nil {
				return fmt.Errorf("register cron task: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			if runOnStart {
				sched.RunAsync()
			}

			a.log.Info().Str("cron", cfg.Schedule.BenchCron).Msg("scheduler running, press Ctrl+C to stop")
			<-ctx.Done()
			a.log.Info().Msg("shutdown signal received, stopping")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", os.Getenv("RUN_ON_START") == "true", "Run one benchmark immediately")
	return cmd
}
