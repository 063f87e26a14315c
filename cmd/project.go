package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	projectAddColor  string
	projectDeleteYes bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Delete a project and all of its tasks",
	Long: `Delete a project (by name or id) and all of its tasks.
Past time entries referencing the project are kept and will show as
"Unknown Project" afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectDelete,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects and their tasks",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

func init() {
	projectAddCmd.Flags().StringVar(&projectAddColor, "color", "", "Display color, e.g. #3b82f6 (default: next palette color)")
	projectDeleteCmd.Flags().BoolVarP(&projectDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectListCmd)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	project, err := t.AddProject(args[0], projectAddColor)
	if err != nil {
		return err
	}
	fmt.Printf("Created project %q (%s)\n", project.Name, shortID(project.ID))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
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

	removed, err := t.DeleteProject(project.ID, confirmPrompt)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("Deleted project %q\n", project.Name)
	} else {
		fmt.Println("Aborted.")
	}
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	projects := t.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects yet. Use 'chronotrack project add' to create one.")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("%-8s  %s  %s (%d tasks)\n", shortID(p.ID), p.Color, p.Name, len(p.Tasks))
		for _, task := range p.Tasks {
			fmt.Printf("    %-8s  %s\n", shortID(task.ID), task.Name)
		}
	}
	return nil
}

// shortID truncates long identifiers for display; seed ids stay as-is.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// confirmPrompt asks on stdin unless --yes was given.
func confirmPrompt(prompt string) bool {
	if projectDeleteYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
