package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/stats"
	"github.com/ktausif7709-art/Time-tracker/internal/timecalc"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated time statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	entries := t.Entries()
	if len(entries) == 0 {
		fmt.Println("Add some time logs to see your statistics.")
		return nil
	}

	fmt.Println("Hours per Project")
	fmt.Println("--------------------------------")
	for _, pt := range stats.PerProjectTotals(entries, t.Projects()) {
		fmt.Printf("%-24s%s\n", pt.ProjectName, timecalc.FormatHours(pt.Hours))
	}

	fmt.Println()
	fmt.Println("Recent Daily Activity")
	fmt.Println("--------------------------------")
	for _, dt := range stats.TrailingDailyTotals(entries, 7) {
		fmt.Printf("%-24s%s\n", dt.Date, timecalc.FormatHours(dt.Hours))
	}

	total := stats.TotalLoggedHours(entries)
	fmt.Println()
	fmt.Printf("Total Logged: %s (%.2f decimal hours)\n", timecalc.FormatHours(total), total)
	return nil
}
