package gaps

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var organizationCmd = &cobra.Command{
	Use:     "organization",
	Short:   "Show aggregated skill gaps across the organization",
	Aliases: []string{"org"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SkillsService == nil {
			fmt.Println("Gap analysis requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		gaps, err := app.SkillsService.AnalyzeOrganization(cmd.Context(), app.CurrentOrgID)
		if err != nil {
			return fmt.Errorf("gap analysis failed: %w", err)
		}

		if len(gaps) == 0 {
			fmt.Println("No skill gaps detected.")
			return nil
		}

		fmt.Printf("Organization skill gaps (%d):\n", len(gaps))
		fmt.Println(strings.Repeat("-", 60))
		for _, gap := range gaps {
			fmt.Printf("[%s] %s - missing for %d employees (roles: %s)\n",
				gap.Priority, gap.Skill, gap.MissingCount, strings.Join(gap.AffectedRoles, ", "))
		}
		return nil
	},
}
