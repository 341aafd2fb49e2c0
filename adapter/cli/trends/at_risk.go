package trends

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var atRiskCmd = &cobra.Command{
	Use:   "at-risk",
	Short: "List employees with a confidently declining trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TrendsService == nil {
			fmt.Println("Trend prediction requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		results, err := app.TrendsService.GetEmployeesAtRisk(cmd.Context(), app.CurrentOrgID)
		if err != nil {
			return fmt.Errorf("at-risk analysis failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No employees at risk.")
			return nil
		}

		fmt.Printf("Employees at risk (%d):\n", len(results))
		fmt.Println(strings.Repeat("-", 70))
		for _, r := range results {
			fmt.Printf("%s  conf %3d%%  current %6.2f  %s\n",
				r.EmployeeID, r.Confidence, r.CurrentScore, r.Recommendation)
		}
		return nil
	},
}
