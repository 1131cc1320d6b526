package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ProfitScanner/internal/util"
)

const version = "v0.3.0"

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	log        zerolog.Logger
}

func (a *app) setLogger(level string) {
	if a.logJSON {
		a.log = util.NewLogger(level)
		return
	}
	a.log = util.NewConsoleLogger(level)
}

func main() {
	a := &app{log: util.NewConsoleLogger("info")}
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("profitscan failed")
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "profitscan",
		Short:         "Find the best single buy/sell pair in relative price series",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flags().Changed("log-level") || a.logJSON {
				a.setLogger(a.logLevel)
			}
		},
	}

	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultCfg, "Path to YAML config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Emit JSON logs on stdout instead of console logs on stderr")

	root.AddCommand(newBenchCmd(a), newScanCmd(a), newScheduleCmd(a))
	return root
}
