package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/timecalc"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many entries (0 = all)")
}

func runList(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	entries := t.Entries()
	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}
	if listLimit > 0 && len(entries) > listLimit {
		entries = entries[:listLimit]
	}

	for _, e := range entries {
		fmt.Printf("%s  %s  %-8s  %s - %s\n",
			shortID(e.ID),
			e.Date,
			timecalc.FormatHours(e.Hours),
			t.ProjectName(e.ProjectID),
			t.TaskName(e.ProjectID, e.TaskID),
		)
		if e.Notes != "" {
			fmt.Printf("          %q\n", e.Notes)
		}
	}
	return nil
}
