package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqbench/internal/graphs"
	"seqbench/internal/report"
	"seqbench/internal/suite"
	"seqbench/internal/ui"
)

// suiteConfig allows swapping the scenario matrix in tests.
var suiteConfig = suite.DefaultConfig

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark matrix and write the HTML report",
	Long: `Runs every scenario (fill, linear search, random insert/remove, sort,
destruction and sorted random insertion) for each payload type across vector,
list and deque, then writes the Google Charts report. Progress is echoed to
stdout as each graph starts and each sample is recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("output", report.DefaultPath, "Report destination file")
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
}

func runSuite(cmd *cobra.Command) error {
	out := viper.GetString("output")
	if out == "" {
		out = report.DefaultPath
	}
	slog.Debug("starting benchmark run", "output", out)

	gc := graphs.NewContext(cmd.OutOrStdout())

	start := time.Now()
	suite.Run(gc, suiteConfig())
	slog.Debug("benchmark matrix finished", "elapsed", time.Since(start))

	if err := report.WriteFile(out, gc.Graphs()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(gc.Graphs()))
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
	return nil
}
