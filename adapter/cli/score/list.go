package score

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminahr/talentscope/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the latest score of every employee",
	Aliases: []string{"ls", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScoringService == nil {
			fmt.Println("Scoring requires a database connection.")
			fmt.Println("Start services with: docker-compose up -d")
			return nil
		}

		scores, err := app.ScoringService.GetAllScores(cmd.Context(), app.CurrentOrgID)
		if err != nil {
			return fmt.Errorf("failed to list scores: %w", err)
		}

		if len(scores) == 0 {
			fmt.Println("No scores recorded yet. Run: talentscope score batch")
			return nil
		}

		fmt.Printf("Scores (%d):\n", len(scores))
		fmt.Println(strings.Repeat("-", 70))
		for _, s := range scores {
			fmt.Printf("%6.2f  %s (%s, %s)\n", s.Score.Score, s.EmployeeName, s.Role, s.Department)
		}
		return nil
	},
}
