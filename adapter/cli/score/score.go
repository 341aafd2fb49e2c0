// Package score contains the productivity scoring CLI commands.
package score

import (
	"github.com/spf13/cobra"
)

// Cmd is the score command group
var Cmd = &cobra.Command{
	Use:   "score",
	Short: "Productivity scoring",
	Long:  `Calculate, inspect, and batch-refresh employee productivity scores.`,
}

func init() {
	Cmd.AddCommand(calculateCmd)
	Cmd.AddCommand(latestCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(batchCmd)
}
