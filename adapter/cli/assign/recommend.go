package assign

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
	"github.com/luminahr/talentscope/internal/assignment/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

var (
	requiredSkills []string
	complexity     string
	department     string
	estimatedHours float64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend employees for a task",
	Long: `Rank active employees by how well they fit a task, combining skills
match, current workload, productivity, and recent availability.

Examples:
  talentscope assign recommend --skills Python,SQL --complexity high
  talentscope assign recommend --skills React --department Engineering`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AssignmentService == nil {
			fmt.Println("Assignment recommendations require a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		req := domain.TaskRequirements{
			RequiredSkills: requiredSkills,
			Complexity:     workforce.Complexity(complexity),
			Department:     department,
			EstimatedHours: estimatedHours,
		}

		candidates, err := app.AssignmentService.RecommendEmployees(cmd.Context(), app.CurrentOrgID, req)
		if err != nil {
			return fmt.Errorf("recommendation failed: %w", err)
		}

		if len(candidates) == 0 {
			fmt.Println("No candidates found.")
			return nil
		}

		fmt.Printf("Candidates (%d):\n", len(candidates))
		fmt.Println(strings.Repeat("-", 70))
		for i, c := range candidates {
			fmt.Printf("%d. %s (score %d)\n", i+1, c.EmployeeName, c.SuitabilityScore)
			fmt.Printf("   skills %.0f%% | active tasks %d | productivity %.1f\n",
				c.SkillsMatchPct, c.ActiveTaskCount, c.ProductivityScore)
			for _, reason := range c.Reasoning {
				fmt.Printf("   - %s\n", reason)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringSliceVar(&requiredSkills, "skills", nil, "required skills (comma separated)")
	recommendCmd.Flags().StringVar(&complexity, "complexity", "medium", "task complexity (low, medium, high)")
	recommendCmd.Flags().StringVar(&department, "department", "", "restrict candidates to a department")
	recommendCmd.Flags().Float64Var(&estimatedHours, "hours", 0, "estimated effort in hours")
}
