package profiling

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal/format"
)

// RenderTable lays the summary out as a two-column text table
func RenderTable(s SeriesSummary) string {
	t := table.NewWriter()
	t.SetTitle("Series summary")
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"count", strconv.Itoa(s.Count)},
		{"mean", pretty(s.Mean)},
		{"std dev (pop)", pretty(s.StdDev)},
		{"min", pretty(s.Min)},
		{"q1", pretty(s.Q1)},
		{"median", pretty(s.Median)},
		{"q3", pretty(s.Q3)},
		{"max", pretty(s.Max)},
		{"skewness", pretty(s.Skewness)},
		{"iqr outliers", strconv.Itoa(s.Outliers)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)

	return t.Render()
}

func pretty(v float64) string {
	return format.Pretty(v, zscore.WindowDigits)
}
