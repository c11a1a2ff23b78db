// Package shell provides the "sheetops shell" interactive REPL command.
package shell

import (
	"fmt"

	"github.com/spf13/cobra"

	shellpkg "github.com/klytics/sheetops/internal/shell"
)

// NewCommand creates the shell command.
func NewCommand() *cobra.Command {
	var evalCmd string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive sheetops shell",
		Long: `Start an interactive REPL with history and tab completion over the
sheetops action vocabulary. Commands run without re-paying startup cost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := shellpkg.NewSession()
			if err != nil {
				return err
			}
			if evalCmd != "" {
				output, err := session.Eval(cmd.Context(), evalCmd)
				if err != nil {
					return err
				}
				fmt.Print(output)
				return nil
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&evalCmd, "eval", "", "Run a single command and exit")
	return cmd
}
