package pipeline

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/pipeline"
	"github.com/klytics/sheetops/internal/pipeline/actions"
)

func newRunCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "Run a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			p, err := pipeline.LoadPipeline(args[0])
			if err != nil {
				return err
			}

			exec := pipeline.NewExecutor(verbose)
			exec.SetDryRun(dryRun)
			actions.RegisterAll(exec)

			results, err := exec.Run(cmd.Context(), p)
			if err != nil {
				return err
			}

			succeeded := 0
			for _, r := range results {
				if r.Error == nil {
					succeeded++
				}
			}
			color.New(color.FgGreen).Printf("Pipeline '%s' completed: %d/%d steps succeeded\n",
				p.Name, succeeded, len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and list steps without executing them")

	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pipeline.yaml>",
		Short: "Validate a pipeline file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.LoadPipeline(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Pipeline '%s' is valid (%d steps)\n", p.Name, len(p.Steps))
			return nil
		},
	}
}
