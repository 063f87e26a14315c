package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/timecalc"
	"github.com/ktausif7709-art/Time-tracker/internal/tracker"
)

var (
	logProject string
	logTask    string
	logHours   float64
	logDate    string
	logNotes   string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log hours against a project task",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logProject, "project", "p", "", "Project name or id")
	logCmd.Flags().StringVarP(&logTask, "task", "t", "", "Task name or id")
	logCmd.Flags().Float64Var(&logHours, "hours", 0, "Duration in decimal hours (e.g. 1.5)")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date as YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Work details")
	_ = logCmd.MarkFlagRequired("project")
	_ = logCmd.MarkFlagRequired("task")
	_ = logCmd.MarkFlagRequired("hours")
}

func runLog(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	project, ok := t.ResolveProject(logProject)
	if !ok {
		return fmt.Errorf("unknown project %q (see: chronotrack project list)", logProject)
	}
	task, ok := tracker.ResolveTask(project, logTask)
	if !ok {
		return fmt.Errorf("project %q has no task %q", project.Name, logTask)
	}

	date := logDate
	if date == "" {
		date = timecalc.Today()
	}
	if !timecalc.ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	entry, err := t.AddEntry(project.ID, task.ID, date, logHours, logNotes)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s - %s (%s)\n",
		timecalc.FormatHours(entry.Hours), project.Name, task.Name, entry.Date)
	return nil
}
