package gaps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var employeeCmd = &cobra.Command{
	Use:   "employee <employee-id>",
	Short: "Show an employee's skill gaps",
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

		gap, err := app.SkillsService.AnalyzeEmployee(cmd.Context(), app.CurrentOrgID, employeeID)
		if err != nil {
			return fmt.Errorf("gap analysis failed: %w", err)
		}
		if gap == nil {
			fmt.Println("Employee not found.")
			return nil
		}

		fmt.Printf("Role: %s\n", gap.Role)
		fmt.Printf("Gap score: %d%% (%d of %d required skills missing)\n",
			gap.GapScore, len(gap.MissingSkills), len(gap.RequiredSkills))

		if len(gap.MissingSkills) == 0 {
			fmt.Println("All required skills covered.")
			return nil
		}

		fmt.Println(strings.Repeat("-", 60))
		for _, entry := range gap.MissingSkills {
			fmt.Printf("[%s] %s - %s\n", entry.Priority, entry.Skill, entry.Reason)
		}
		return nil
	},
}
