package gaps

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <employee-id>",
	Short: "Show development recommendations for an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SkillsService == nil {
			fmt.Println("Gap analysis requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		employeeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id: %w", err)
		}

		result, err := app.SkillsService.GetRecommendations(cmd.Context(), app.CurrentOrgID, employeeID)
		if err != nil {
			return fmt.Errorf("recommendation failed: %w", err)
		}
		if result == nil {
			fmt.Println("Employee not found.")
			return nil
		}

		fmt.Printf("Gap score: %d%%\n", result.Gap.GapScore)
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		return nil
	},
}
