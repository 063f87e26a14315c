package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/timecalc"
	"github.com/ktausif7709-art/Time-tracker/internal/timer"
	"github.com/ktausif7709-art/Time-tracker/internal/tracker"
)

var (
	timerLogProject string
	timerLogTask    string
	timerLogNotes   string
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the stopwatch and log the session",
}

var timerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start (or resume) the stopwatch",
	Args:  cobra.NoArgs,
	RunE:  runTimerStart,
}

var timerPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the stopwatch",
	Args:  cobra.NoArgs,
	RunE:  runTimerPause,
}

var timerResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current session",
	Args:  cobra.NoArgs,
	RunE:  runTimerReset,
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE:  runTimerStatus,
}

var timerLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log the session as a time entry and reset",
	Args:  cobra.NoArgs,
	RunE:  runTimerLog,
}

func init() {
	timerLogCmd.Flags().StringVarP(&timerLogProject, "project", "p", "", "Project name or id")
	timerLogCmd.Flags().StringVarP(&timerLogTask, "task", "t", "", "Task name or id")
	timerLogCmd.Flags().StringVar(&timerLogNotes, "notes", "", "Work details")
	_ = timerLogCmd.MarkFlagRequired("project")
	_ = timerLogCmd.MarkFlagRequired("task")

	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerPauseCmd)
	timerCmd.AddCommand(timerResetCmd)
	timerCmd.AddCommand(timerStatusCmd)
	timerCmd.AddCommand(timerLogCmd)
}

func runTimerStart(cmd *cobra.Command, args []string) error {
	_, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	sw := timer.New(store)
	if sw.Running() {
		fmt.Printf("Already running at %s\n", timecalc.FormatClock(sw.Elapsed()))
		return nil
	}
	if err := sw.Start(); err != nil {
		return err
	}
	fmt.Printf("Started at %s\n", timecalc.FormatClock(sw.Elapsed()))
	return nil
}

func runTimerPause(cmd *cobra.Command, args []string) error {
	_, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	sw := timer.New(store)
	if !sw.Running() {
		fmt.Println("Not running.")
		return nil
	}
	if err := sw.Pause(); err != nil {
		return err
	}
	fmt.Printf("Paused at %s\n", timecalc.FormatClock(sw.Elapsed()))
	return nil
}

func runTimerReset(cmd *cobra.Command, args []string) error {
	_, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	sw := timer.New(store)
	if err := sw.Reset(); err != nil {
		return err
	}
	fmt.Println("Timer reset.")
	return nil
}

func runTimerStatus(cmd *cobra.Command, args []string) error {
	_, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	sw := timer.New(store)
	state := "Paused"
	if sw.Running() {
		state = "Running"
	}
	fmt.Printf("%s: %s (= %s)\n", state,
		timecalc.FormatClock(sw.Elapsed()), timecalc.FormatHours(sw.Hours()))
	return nil
}

func runTimerLog(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	sw := timer.New(store)
	if err := sw.CheckLoggable(); err != nil {
		if errors.Is(err, timer.ErrTooShort) {
			return fmt.Errorf("%w; current session is %s", err, timecalc.FormatClock(sw.Elapsed()))
		}
		return err
	}

	project, ok := t.ResolveProject(timerLogProject)
	if !ok {
		return fmt.Errorf("unknown project %q (see: chronotrack project list)", timerLogProject)
	}
	task, ok := tracker.ResolveTask(project, timerLogTask)
	if !ok {
		return fmt.Errorf("project %q has no task %q", project.Name, timerLogTask)
	}

	entry, err := t.AddEntry(project.ID, task.ID, timecalc.Today(), sw.Hours(), timerLogNotes)
	if err != nil {
		return err
	}
	if err := sw.Reset(); err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s - %s (%s)\n",
		timecalc.FormatHours(entry.Hours), project.Name, task.Name, entry.Date)
	return nil
}
