package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"ProfitScanner/internal/model"
)

// FormatBanner is printed before a benchmark table.
func FormatBanner(runs int) string {
	return fmt.Sprintf("Running %d runs for each count ...\n", runs)
}

// FormatBenchReport renders the benchmark rows as a text table.
func FormatBenchReport(report *model.BenchReport) string {
	var b strings.Builder

	table := tablewriter.NewWriter(&b)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"count", "runs_in_microseconds", "avg_time_per_10_000_elem"})

	for _, row := range report.Rows {
		table.Append([]string{
			strconv.Itoa(row.Count),
			formatRuns(row),
			strconv.FormatInt(row.AvgPer10k.Microseconds(), 10),
		})
	}
	table.Render()
	return b.String()
}

// formatRuns joins run durations in microseconds, each followed by a comma.
func formatRuns(row model.BenchRow) string {
	var b strings.Builder
	for _, d := range row.Runs {
		b.WriteString(strconv.FormatInt(d.Microseconds(), 10))
		b.WriteByte(',')
	}
	return b.String()
}

// FormatTrade summarizes a scan result on a single line.
func FormatTrade(trade model.Trade, ok bool) string {
	if !ok {
		return "no profitable trade"
	}
	return fmt.Sprintf("buy at %d (price %d), sell at %d (price %d), profit %d",
		trade.BuyIndex, trade.BuyPrice, trade.SellIndex, trade.SellPrice, trade.Profit)
}
