package score

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var latestCmd = &cobra.Command{
	Use:   "latest <employee-id>",
	Short: "Show an employee's most recent score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScoringService == nil {
			fmt.Println("Scoring requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		employeeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id: %w", err)
		}

		score, err := app.ScoringService.GetLatestScore(cmd.Context(), app.CurrentOrgID, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get latest score: %w", err)
		}
		if score == nil {
			fmt.Println("No score recorded yet. Calculate one with: talentscope score calculate <employee-id>")
			return nil
		}

		fmt.Printf("Employee %s\n", score.EmployeeID)
		fmt.Printf("  Score:          %.2f\n", score.Score)
		fmt.Printf("  Calculated at:  %s\n", score.CalculatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}
