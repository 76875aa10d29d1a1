package main

import (
	"fmt"
	"time"

	"shelldon/internal/repository"
	"shelldon/internal/service"
	"shelldon/internal/timeseries"

	"github.com/spf13/cobra"
)

var summaryRange string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print history statistics for a range",
	Long:  `Prints current, average, min and max temperature plus the latest water reading and its Safe/Check status.`,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryRange, "range", string(timeseries.DefaultRange), "Time range (24h, 7d, 30d, all)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	r, err := timeseries.ParseRange(summaryRange)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	source := service.NewHistorySource(a.cfg.History.Source, a.snap, repository.NewRepository(a.db))
	history := service.NewHistoryService(source, time.Now)

	temp, err := history.Temperature(ctx, r)
	if err != nil {
		return fmt.Errorf("temperature history: %w", err)
	}
	water, err := history.Water(ctx, r)
	if err != nil {
		return fmt.Errorf("water history: %w", err)
	}

	fmt.Printf("\nShelldon habitat, %s (%s source)\n", r.Label(), a.cfg.History.Source)
	fmt.Println("----------------------------------------")
	fmt.Printf("%-12s  %8s  %8s  %8s  %8s\n", "Series", "Current", "Average", "Min", "Max")
	fmt.Println("----------------------------------------")
	printSummary("Temp °F", temp.Summary, "%8.1f")
	printSummary("pH", water.PH, "%8.1f")
	printSummary("Ammonia", water.Ammonia, "%8.2f")
	fmt.Println("----------------------------------------")
	fmt.Printf("Optimal temperature %g-%g °F, water %s (%d temperature, %d water points)\n",
		temp.Optimal.Min, temp.Optimal.Max, water.Status, temp.Summary.Count, water.PH.Count)
	if a.snap.Fallback {
		fmt.Println("Fixture unavailable; values are defaults.")
	}
	return nil
}

func printSummary(name string, s timeseries.Summary, numFmt string) {
	format := "%-12s  " + numFmt + "  " + numFmt + "  " + numFmt + "  " + numFmt + "\n"
	fmt.Printf(format, name, s.Current, s.Average, s.Min, s.Max)
}
