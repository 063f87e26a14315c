package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/insight"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Get an AI productivity summary of your logged activity",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	t, store, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := insight.NewClient(cfg.Insight.Model,
		time.Duration(cfg.Insight.TimeoutSeconds)*time.Second)
	if err != nil {
		return err
	}

	fmt.Println("Analyzing your time logs...")
	result, err := insight.NewGenerator(client).Insights(
		context.Background(), t.Entries(), t.Projects())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(result.Summary)
	fmt.Printf("Tip: %s\n", result.Tip)
	return nil
}
