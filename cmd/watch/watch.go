// Package watch provides the "sheetops watch" CLI command.
package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/klytics/sheetops/internal/config"
	"github.com/klytics/sheetops/internal/pipeline"
	"github.com/klytics/sheetops/internal/pipeline/actions"
	w "github.com/klytics/sheetops/internal/watch"
)

// NewCommand creates the watch command.
func NewCommand() *cobra.Command {
	var (
		pipelinePath string
		extensions   []string
		recursive    bool
		debounce     int
	)

	cmd := &cobra.Command{
		Use:   "watch <directory> [directory...]",
		Short: "Re-run a pipeline when workbooks change",
		Long: `Watches directories for new or modified workbooks and runs the given
pipeline on each change, with ${{watch.file}} bound to the changed path.

Example:
  sheetops watch ./incoming --pipeline clean.yaml --ext .xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			p, err := pipeline.LoadPipeline(pipelinePath)
			if err != nil {
				return err
			}

			if debounce <= 0 {
				debounce = config.Load().Watch.DebounceMS
			}

			watcher, err := w.New(w.Config{
				Directories: args,
				Extensions:  extensions,
				Recursive:   recursive,
				DebounceMS:  debounce,
			})
			if err != nil {
				return err
			}

			watcher.Handler = func(path string) error {
				exec := pipeline.NewExecutor(verbose)
				exec.SetVar("watch.file", path)
				actions.RegisterAll(exec)
				_, err := exec.Run(cmd.Context(), p)
				return err
			}

			fmt.Printf("Watching %d directory(ies), running pipeline '%s' on change\n", len(args), p.Name)
			fmt.Println("Press Ctrl+C to stop")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Println("\nStopping watcher...")
				cancel()
			}()

			return watcher.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&pipelinePath, "pipeline", "", "Pipeline YAML to run on each change (required)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to watch (default: .xlsx)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Watch directories recursively")
	cmd.Flags().IntVar(&debounce, "debounce", 0, "Debounce interval in milliseconds (default from config)")
	cmd.MarkFlagRequired("pipeline")

	return cmd
}
