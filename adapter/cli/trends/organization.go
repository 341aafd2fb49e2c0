package trends

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var organizationCmd = &cobra.Command{
	Use:     "organization",
	Short:   "Predict trends for all active employees",
	Aliases: []string{"org"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TrendsService == nil {
			fmt.Println("Trend prediction requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		results, err := app.TrendsService.PredictOrganizationTrends(cmd.Context(), app.CurrentOrgID)
		if err != nil {
			return fmt.Errorf("trend prediction failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No active employees found.")
			return nil
		}

		fmt.Printf("Trends (%d, declining first):\n", len(results))
		fmt.Println(strings.Repeat("-", 70))
		for _, r := range results {
			fmt.Printf("%-10s conf %3d%%  current %6.2f  predicted %6.2f  %s\n",
				r.Trend, r.Confidence, r.CurrentScore, r.PredictedScore, r.EmployeeID)
		}
		return nil
	},
}
