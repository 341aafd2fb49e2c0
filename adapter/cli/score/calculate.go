package score

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
)

var calculateFresh bool

var calculateCmd = &cobra.Command{
	Use:   "calculate <employee-id>",
	Short: "Calculate an employee's productivity score",
	Long: `Compute a new productivity score from the employee's full task history
and append it to the score history.

With --fresh, a recent enough existing score is returned instead of
recomputing.

Examples:
  talentscope score calculate 4f9d...        # Always compute a new record
  talentscope score calculate 4f9d... --fresh # Reuse if newer than the freshness threshold`,
	Args: cobra.ExactArgs(1),
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

		var score *scoring.ProductivityScore
		if calculateFresh {
			score, err = app.ScoringService.GetFreshScore(cmd.Context(), app.CurrentOrgID, employeeID)
		} else {
			score, err = app.ScoringService.CalculateScore(cmd.Context(), app.CurrentOrgID, employeeID)
		}
		if err != nil {
			return fmt.Errorf("failed to calculate score: %w", err)
		}

		fmt.Printf("Employee %s\n", score.EmployeeID)
		fmt.Printf("  Score:           %.2f\n", score.Score)
		fmt.Printf("  Completion rate: %.2f%%\n", score.CompletionRate)
		fmt.Printf("  Avg hours:       %.2f\n", score.AvgCompletionHours)
		fmt.Printf("  Avg complexity:  %.2f\n", score.AvgComplexity)
		fmt.Printf("  Calculated at:   %s\n", score.CalculatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	calculateCmd.Flags().BoolVar(&calculateFresh, "fresh", false, "reuse a recent score instead of recomputing")
}
