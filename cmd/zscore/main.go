package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"zscorecalc/app"
	"zscorecalc/internal"
	"zscorecalc/internal/config"
	apperrors "zscorecalc/internal/errors"
	"zscorecalc/internal/profiling"
	"zscorecalc/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		internal.DefaultLogger.Warn("could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		internal.DefaultLogger.Error("%v", err)
		os.Exit(exitCode(err))
	}
	internal.DefaultLogger.SetLevel(cfg.Logging.Level)
	if internal.DefaultLogger.GetLevel() >= internal.LogLevelDebug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		ui.Alert(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for bad user input,
// 1 for everything else.
func exitCode(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.CodeThresholdParse, apperrors.CodeInvalidInput, apperrors.CodeConfigInvalid:
		return 2
	default:
		return 1
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zscore",
		Short:         "Z-score exceedance and rolling window statistics for a numeric series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCalcCmd(cfg),
		newShellCmd(cfg),
	)

	return rootCmd
}

func newCalcCmd(cfg *config.Config) *cobra.Command {
	var threshold string
	var data string
	var summary bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the z-score report for one series",
		Long: `Calculate z-score exceedance counts and percentages over the whole series
and over indices 100-300, followed by a rolling mean/stddev report over a
100 value window.

Values are separated by commas or newlines; anything that is not a number is
ignored. Data is taken from --data, or from stdin when --data is empty.

Example: seq 1 500 | zscore calc --threshold 2.5 --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if data == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return apperrors.Wrapf(err, "failed to read data after %d bytes", len(raw))
				}
				data = string(raw)
			}
			return runCalc(cmd.OutOrStdout(), data, threshold, summary)
		},
	}

	cmd.Flags().StringVarP(&threshold, "threshold", "t", cfg.Report.DefaultThreshold, "Z-score threshold (sign is ignored)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "Data values; read from stdin when empty")
	cmd.Flags().BoolVar(&summary, "summary", cfg.Report.Summary, "Append a descriptive summary table")

	return cmd
}

func runCalc(out io.Writer, data, threshold string, summary bool) error {
	svc := app.NewReportService(internal.DefaultLogger)

	calc, err := svc.Calculate(data, threshold)
	if errors.Is(err, app.ErrEmptySeries) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, app.Render(calc))

	if summary {
		s, err := profiling.SummarizeSeries(calc.Series)
		if err != nil {
			internal.DefaultLogger.Warn("summary skipped: %v", err)
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, profiling.RenderTable(s))
	}

	return nil
}

func newShellCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive calculator session",
		Long: `Start an interactive session. Data lines accumulate until :calc is entered;
:clear empties the data and the last report. The threshold starts at the
configured default (ZSCORE_THRESHOLD, 3.0 if unset).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := ui.NewSession(app.NewReportService(internal.DefaultLogger), cfg.Report.DefaultThreshold, internal.DefaultLogger)
			return ui.RunShell(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), session)
		},
	}
}
