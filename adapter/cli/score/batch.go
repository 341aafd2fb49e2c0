package score

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Recalculate scores for all active employees",
	Long: `Recalculate productivity scores for every active employee of the
organization. Failures for individual employees are reported at the end
without aborting the batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScoringService == nil {
			fmt.Println("Scoring requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		result, err := app.ScoringService.BatchCalculateScores(cmd.Context(), app.CurrentOrgID)
		if err != nil {
			return fmt.Errorf("batch calculation failed: %w", err)
		}

		fmt.Printf("Scored %d employees", result.Succeeded())
		if len(result.Failures) > 0 {
			fmt.Printf(", %d failed:\n", len(result.Failures))
			for _, f := range result.Failures {
				fmt.Printf("  %s: %v\n", f.EmployeeID, f.Err)
			}
		} else {
			fmt.Println()
		}
		return nil
	},
}
