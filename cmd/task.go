package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/tracker"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks within a project",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <project> <name>",
	Short: "Add a task to a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAdd,
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <project> <task>",
	Short: "Remove a task from a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskDelete,
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	project, ok := t.ResolveProject(args[0])
	if !ok {
		return fmt.Errorf("unknown project %q", args[0])
	}

	task, err := t.AddTask(project.ID, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Added task %q to %s\n", task.Name, project.Name)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	project, ok := t.ResolveProject(args[0])
	if !ok {
		fmt.Printf("No project %q; nothing to delete.\n", args[0])
		return nil
	}
	task, ok := tracker.ResolveTask(project, args[1])
	if !ok {
		fmt.Printf("Project %q has no task %q; nothing to delete.\n", project.Name, args[1])
		return nil
	}

	if err := t.DeleteTask(project.ID, task.ID); err != nil {
		return err
	}
	fmt.Printf("Removed task %q from %s\n", task.Name, project.Name)
	return nil
}
