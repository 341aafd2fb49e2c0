// Package gaps contains the skill-gap analysis CLI commands.
package gaps

import (
	"github.com/spf13/cobra"
)

// Cmd is the gaps command group
var Cmd = &cobra.Command{
	Use:   "gaps",
	Short: "Skill gap analysis",
	Long:  `Analyze missing skills per employee or across the whole organization.`,
}

func init() {
	Cmd.AddCommand(employeeCmd)
	Cmd.AddCommand(organizationCmd)
	Cmd.AddCommand(adviseCmd)
}
