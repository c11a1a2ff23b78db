package pipeline

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// ActionFunc is the signature for pipeline action handlers. It returns the
// path of the workbook the step wrote.
type ActionFunc func(ctx context.Context, step Step) (string, error)

// Executor runs pipeline steps sequentially, resolving variable
// interpolation between steps.
type Executor struct {
	actions map[string]ActionFunc
	results map[string]*StepResult
	vars    map[string]string
	verbose bool
	dryRun  bool
}

// NewExecutor creates a new pipeline executor.
func NewExecutor(verbose bool) *Executor {
	return &Executor{
		actions: make(map[string]ActionFunc),
		results: make(map[string]*StepResult),
		vars:    make(map[string]string),
		verbose: verbose,
	}
}

// SetDryRun enables dry-run mode: steps are resolved and listed but not
// executed.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// SetVar binds an interpolation variable, e.g. "watch.file".
func (e *Executor) SetVar(name, value string) {
	e.vars[name] = value
}

// RegisterAction adds an action handler to the executor's registry.
func (e *Executor) RegisterAction(name string, fn ActionFunc) {
	e.actions[name] = fn
}

// Run executes all steps in the pipeline sequentially. The first failing
// step aborts the run unless it declares on_failure: skip.
func (e *Executor) Run(ctx context.Context, p *Pipeline) ([]StepResult, error) {
	var results []StepResult

	if e.verbose {
		fmt.Printf("Running pipeline: %s (v%s)\n", p.Name, p.Version)
		if e.dryRun {
			fmt.Println("  (dry-run mode — steps are listed, not executed)")
		}
	}

	for i, step := range p.Steps {
		if e.verbose {
			fmt.Printf("[%d/%d] Running step: %s (%s)\n", i+1, len(p.Steps), step.ID, step.Action)
		}

		resolved := e.resolveStepVariables(step)

		action, ok := e.actions[resolved.Action]
		if !ok {
			err := fmt.Errorf("unknown action %q in step %q — registered actions: %v",
				resolved.Action, resolved.ID, e.actionNames())
			if resolved.OnFailure == "skip" {
				if e.verbose {
					fmt.Printf("  Skipping step %s: %s\n", resolved.ID, err)
				}
				result := StepResult{StepID: resolved.ID, Error: err}
				results = append(results, result)
				e.results[resolved.ID] = &result
				continue
			}
			return results, err
		}

		if e.dryRun {
			if e.verbose {
				fmt.Printf("  [DRY-RUN] Would run %s: %s -> %s\n", resolved.Action, resolved.Input, resolved.Output)
			}
			result := StepResult{StepID: resolved.ID, Output: resolved.Output}
			results = append(results, result)
			e.results[resolved.ID] = &result
			continue
		}

		start := time.Now()
		outputPath, err := action(ctx, resolved)
		duration := time.Since(start)

		result := StepResult{StepID: resolved.ID, Output: outputPath, Error: err}
		results = append(results, result)
		e.results[resolved.ID] = &result

		if e.verbose {
			fmt.Printf("  Completed in %s\n", duration.Round(time.Millisecond))
		}

		if err != nil {
			if resolved.OnFailure == "skip" {
				if e.verbose {
					fmt.Printf("  Step %s failed (skipping): %s\n", resolved.ID, err)
				}
				continue
			}
			return results, fmt.Errorf("step %q failed: %w", resolved.ID, err)
		}
	}

	return results, nil
}

var interpolationPattern = regexp.MustCompile(`\$\{\{\s*([^}]+)\s*\}\}`)

func (e *Executor) resolveStepVariables(step Step) Step {
	resolved := step
	resolved.Input = e.interpolate(step.Input)
	resolved.Input2 = e.interpolate(step.Input2)
	resolved.Output = e.interpolate(step.Output)

	if resolved.Options != nil {
		opts := make(map[string]string, len(resolved.Options))
		for k, v := range resolved.Options {
			opts[k] = e.interpolate(v)
		}
		resolved.Options = opts
	}
	return resolved
}

func (e *Executor) interpolate(s string) string {
	return interpolationPattern.ReplaceAllStringFunc(s, func(match string) string {
		inner := interpolationPattern.FindStringSubmatch(match)
		if len(inner) < 2 {
			return match
		}
		name := strings.TrimSpace(inner[1])

		// steps.<id>.output
		if strings.HasPrefix(name, "steps.") {
			parts := strings.Split(name, ".")
			if len(parts) >= 3 && parts[2] == "output" {
				if result, ok := e.results[parts[1]]; ok {
					return result.Output
				}
			}
		}

		if name == "date.today" {
			return time.Now().Format("2006-01-02")
		}
		if name == "date.now" || name == "date.timestamp" {
			return time.Now().Format(time.RFC3339)
		}

		if strings.HasPrefix(name, "env.") {
			return os.Getenv(strings.TrimPrefix(name, "env."))
		}

		// bound variables, e.g. watch.file
		if v, ok := e.vars[name]; ok {
			return v
		}

		return match
	})
}

func (e *Executor) actionNames() []string {
	names := make([]string, 0, len(e.actions))
	for name := range e.actions {
		names = append(names, name)
	}
	return names
}
