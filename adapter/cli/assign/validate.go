package assign

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
	"github.com/luminahr/talentscope/internal/assignment/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

var (
	validateSkills     []string
	validateComplexity string
)

var validateCmd = &cobra.Command{
	Use:   "validate <employee-id>",
	Short: "Validate a specific employee for a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AssignmentService == nil {
			fmt.Println("Assignment validation requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		employeeID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id: %w", err)
		}

		req := domain.TaskRequirements{
			RequiredSkills: validateSkills,
			Complexity:     workforce.Complexity(validateComplexity),
		}

		result, err := app.AssignmentService.ValidateEmployee(cmd.Context(), app.CurrentOrgID, employeeID, req)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		if result.Suitable {
			fmt.Printf("Suitable (score %d)\n", result.Score)
		} else {
			fmt.Printf("Not suitable (score %d)\n", result.Score)
		}
		for _, warning := range result.Warnings {
			fmt.Printf("  ! %s\n", warning)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringSliceVar(&validateSkills, "skills", nil, "required skills (comma separated)")
	validateCmd.Flags().StringVar(&validateComplexity, "complexity", "medium", "task complexity (low, medium, high)")
}
