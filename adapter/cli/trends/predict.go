package trends

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
	"github.com/luminahr/talentscope/internal/trends/domain"
)

var predictCmd = &cobra.Command{
	Use:   "predict <employee-id>",
	Short: "Predict an employee's performance trend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TrendsService == nil {
			fmt.Println("Trend prediction requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		employeeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id: %w", err)
		}

		result, err := app.TrendsService.PredictTrend(cmd.Context(), app.CurrentOrgID, employeeID)
		if err != nil {
			return fmt.Errorf("trend prediction failed: %w", err)
		}
		if result == nil {
			fmt.Println("Employee not found.")
			return nil
		}

		printTrend(result)
		return nil
	},
}

func printTrend(result *domain.TrendResult) {
	fmt.Printf("Trend: %s (confidence %d%%)\n", result.Trend, result.Confidence)
	fmt.Printf("  Current score:   %.2f\n", result.CurrentScore)
	fmt.Printf("  Predicted score: %.2f\n", result.PredictedScore)
	fmt.Printf("  Data points:     %d\n", result.DataPointCount)
	fmt.Printf("  Factors:         %s\n", strings.Join(result.Factors, "; "))
	fmt.Printf("  Recommendation:  %s\n", result.Recommendation)
}
