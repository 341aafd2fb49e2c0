// Package assign contains the task assignment CLI commands.
package assign

import (
	"github.com/spf13/cobra"
)

// Cmd is the assign command group
var Cmd = &cobra.Command{
	Use:   "assign",
	Short: "Task assignment recommendations",
	Long:  `Recommend employees for a task, or validate a specific assignment.`,
}

func init() {
	Cmd.AddCommand(recommendCmd)
	Cmd.AddCommand(validateCmd)
}
