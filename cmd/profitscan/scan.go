package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ProfitScanner/internal/calculator"
	"ProfitScanner/internal/collector"
	"ProfitScanner/internal/notifier"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		file   string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "scan [-- deltas...]",
		Short: "Find the best buy/sell pair in a delta series",
		Long: `Reads relative price deltas from the arguments, from --file, or from stdin,
and prints the most profitable single buy/sell pair.
Put "--" before the deltas so negative values are not parsed as flags.`,
		Example: "  profitscan scan -- 3 5 -7 3 3 -2\n  echo 3,5,-7,3,3,-2 | profitscan scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := readSeries(cmd, args, file)
			if err != nil {
				return err
			}

			trade, ok := calculator.FindBestTrade(series)
			a.log.Debug().Int("len", len(series)).Bool("found", ok).Msg("scan done")

			if verify {
				want, wantOK := calculator.FindBestTradeBruteForce(series)
				if want != trade || wantOK != ok {
					return fmt.Errorf("verify: scan gave %+v (ok=%v), brute force gave %+v (ok=%v)", trade, ok, want, wantOK)
				}
				a.log.Info().Msg("verified against brute force")
			}

			fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatTrade(trade, ok))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Read deltas from a file instead of arguments")
	cmd.Flags().BoolVar(&verify, "verify", false, "Cross-check the result with the O(n²) scan")
	return cmd
}

func readSeries(cmd *cobra.Command, args []string, file string) ([]int, error) {
	var r io.Reader
	switch {
	case len(args) > 0 && file != "":
		return nil, fmt.Errorf("pass deltas either as arguments or via --file, not both")
	case len(args) > 0:
		r = strings.NewReader(strings.Join(args, " "))
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open series: %w", err)
		}
		defer f.Close()
		r = f
	default:
		r = cmd.InOrStdin()
	}

	series, err := collector.ParseSeries(r)
	if err != nil {
		return nil, fmt.Errorf("parse series: %w", err)
	}
	return series, nil
}
