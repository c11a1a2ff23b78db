// Package pipeline provides the "sheetops pipeline" CLI commands.
package pipeline

import "github.com/spf13/cobra"

// NewCommand returns the pipeline command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run multi-step transformation workflows from YAML files",
		Long: `Defines and runs workflows that chain sheetops actions. Each step names an
action, its input/output workbook paths, and an options map; a later step
can reference an earlier step's output with ${{steps.<id>.output}}.`,
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}
