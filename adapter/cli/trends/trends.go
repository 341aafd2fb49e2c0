// Package trends contains the performance trend CLI commands.
package trends

import (
	"github.com/spf13/cobra"
)

// Cmd is the trends command group
var Cmd = &cobra.Command{
	Use:   "trends",
	Short: "Performance trend prediction",
	Long:  `Predict performance trends from score history, per employee or organization-wide.`,
}

func init() {
	Cmd.AddCommand(predictCmd)
	Cmd.AddCommand(organizationCmd)
	Cmd.AddCommand(atRiskCmd)
}
