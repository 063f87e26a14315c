package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a time entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	// Accept a unique id prefix, as printed by list.
	id := args[0]
	if _, ok := t.EntryByID(id); !ok {
		var matches []string
		for _, e := range t.Entries() {
			if strings.HasPrefix(e.ID, id) {
				matches = append(matches, e.ID)
			}
		}
		if len(matches) > 1 {
			return fmt.Errorf("entry id prefix %q is ambiguous (%d matches)", id, len(matches))
		}
		if len(matches) == 1 {
			id = matches[0]
		}
	}

	removed, err := t.DeleteEntry(id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("Deleted entry %s\n", id)
	} else {
		fmt.Printf("No entry with id %q; nothing to delete.\n", args[0])
	}
	return nil
}
