package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress and/or the player profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		profile, _ := cmd.Flags().GetBool("profile")
		completions, _ := cmd.Flags().GetBool("completions")

		if all {
			profile = true
			completions = true
		}
		if !profile && !completions {
			fmt.Println("Nothing selected. Use --profile, --completions, or --all.")
			return nil
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		if profile {
			if err := s.ProfileRepo().ClearName(ctx); err != nil {
				return fmt.Errorf("clear profile: %w", err)
			}
			fmt.Println("Profile cleared.")
		}
		if completions {
			if err := s.CompletionRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear completions: %w", err)
			}
			if err := s.ResultRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear results: %w", err)
			}
			fmt.Println("Completions and result history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("profile", false, "Delete the player profile")
	resetCmd.Flags().Bool("completions", false, "Delete completions and result history")
	resetCmd.Flags().Bool("all", false, "Delete everything")
}
