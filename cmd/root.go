// Package cmd contains all CLI commands for the sheetops binary.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/cmd/completion"
	cmdconfig "github.com/klytics/sheetops/cmd/config"
	"github.com/klytics/sheetops/cmd/pipeline"
	"github.com/klytics/sheetops/cmd/read"
	"github.com/klytics/sheetops/cmd/sheet"
	cmdshell "github.com/klytics/sheetops/cmd/shell"
	"github.com/klytics/sheetops/cmd/table"
	"github.com/klytics/sheetops/cmd/validation"
	"github.com/klytics/sheetops/cmd/version"
	cmdwatch "github.com/klytics/sheetops/cmd/watch"
	"github.com/klytics/sheetops/internal/config"
	"github.com/klytics/sheetops/internal/output"
	shellpkg "github.com/klytics/sheetops/internal/shell"
)

var (
	verbose bool
	noColor bool
)

// NewRootCommand creates and returns the root cobra command with all
// action commands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetops <action>",
		Short: "A versatile CLI tool for automating Excel workflows",
		Long: `sheetops — spreadsheet transformations from your terminal.

Each action reads an input workbook, applies one transformation, and
writes a new workbook. Row/column actions operate on the first worksheet
as a dataset; structural actions mutate the full workbook in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || !config.Load().Output.Color {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	// Row/column-mode actions
	rootCmd.AddCommand(table.NewFilterCommand())
	rootCmd.AddCommand(table.NewSummarizeCommand())
	rootCmd.AddCommand(table.NewCalculateCommand())
	rootCmd.AddCommand(table.NewMergeCommand())
	rootCmd.AddCommand(table.NewSortCommand())
	rootCmd.AddCommand(table.NewRenameCommand())
	rootCmd.AddCommand(table.NewDropDuplicatesCommand())
	rootCmd.AddCommand(validation.NewCommand())

	// Structural-mode actions
	rootCmd.AddCommand(sheet.NewDuplicateSheetCommand())
	rootCmd.AddCommand(sheet.NewUpdateCellsCommand())
	rootCmd.AddCommand(sheet.NewChartCommand())

	// Tooling
	rootCmd.AddCommand(read.NewCommand())
	rootCmd.AddCommand(pipeline.NewCommand())
	rootCmd.AddCommand(cmdwatch.NewCommand())
	rootCmd.AddCommand(cmdconfig.NewCommand())
	rootCmd.AddCommand(cmdshell.NewCommand())
	rootCmd.AddCommand(completion.NewCommand(rootCmd))
	rootCmd.AddCommand(version.NewCommand())

	return rootCmd
}

// Execute runs the root command. Every failure surfaces as a single
// "An error occurred:" line and exit code 1.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		output.WriteError("An error occurred: %s", err)
		os.Exit(1)
	}
}

func init() {
	shellpkg.DefaultRunner = func(ctx context.Context, args []string, stdout, stderr io.Writer) error {
		c := NewRootCommand()
		c.SetArgs(args)
		c.SetOut(stdout)
		c.SetErr(stderr)
		return c.ExecuteContext(ctx)
	}
}
