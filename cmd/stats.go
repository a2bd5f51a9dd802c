package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		totals, err := s.ResultRepo().Totals(ctx)
		if err != nil {
			return fmt.Errorf("load totals: %w", err)
		}

		completions, err := s.CompletionRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load completions: %w", err)
		}

		accuracy := 0
		if totals.Questions > 0 {
			accuracy = totals.Correct * 100 / totals.Questions
		}
		fmt.Printf("Parts completed: %d\n", len(completions))
		fmt.Printf("Runs:            %d\n", totals.Runs)
		fmt.Printf("Questions:       %d\n", totals.Questions)
		fmt.Printf("Accuracy:        %d%%\n", accuracy)

		recent, err := s.ResultRepo().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("load recent results: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent runs:")
		for _, r := range recent {
			dur := (time.Duration(r.DurationMs) * time.Millisecond).Round(time.Second)
			fmt.Printf("  %-13s %-24s %-9s part %-3d %2d/%-2d  %s\n",
				r.Timestamp.Local().Format("Jan 2 15:04"),
				r.Category, r.Level, r.Part, r.Score, r.Total, dur)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent runs to show")
}
