// Package shell provides the interactive sheetops REPL.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// CommandRunner executes a sheetops command and returns its output. It is
// set by the cmd package to avoid an import cycle.
type CommandRunner func(ctx context.Context, args []string, stdout, stderr io.Writer) error

// DefaultRunner is the command runner used by shell sessions.
var DefaultRunner CommandRunner

// Session manages an interactive sheetops shell session.
type Session struct {
	LastOutput     string
	CommandHistory []string
	HistoryFile    string
	StartTime      time.Time

	// KnownCommands is the list of top-level commands for completion.
	KnownCommands []string
}

// NewSession creates a new interactive session.
func NewSession() (*Session, error) {
	home, _ := os.UserHomeDir()
	histFile := filepath.Join(home, ".sheetops", "shell_history")
	os.MkdirAll(filepath.Dir(histFile), 0755)

	return &Session{
		HistoryFile: histFile,
		StartTime:   time.Now(),
		KnownCommands: []string{
			"filter", "summarize", "calculate", "merge", "sort",
			"rename", "drop_duplicates", "data_validation",
			"duplicate_sheet", "update_cells", "chart",
			"read", "pipeline", "watch",
			"config", "completion", "version",
			"help", "exit", "quit", "history",
		},
	}, nil
}

// Run starts the REPL loop. Blocks until 'exit' or Ctrl+D.
func (s *Session) Run(ctx context.Context) error {
	if DefaultRunner == nil {
		return fmt.Errorf("shell runner not configured")
	}

	completer := readline.NewPrefixCompleter(s.buildCompleter()...)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sheetops> ",
		HistoryFile:     s.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("sheetops — Interactive Shell")
	fmt.Println("Type 'help' for commands, 'exit' to quit.")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.CommandHistory = append(s.CommandHistory, line)

		switch line {
		case "exit", "quit":
			elapsed := time.Since(s.StartTime)
			fmt.Printf("\nSession ended. %d commands run in %s.\n",
				len(s.CommandHistory)-1, formatDuration(elapsed))
			return nil
		case "help":
			s.printHelp()
		case "history":
			for i, cmd := range s.CommandHistory {
				fmt.Printf("  %d  %s\n", i+1, cmd)
			}
		default:
			output, err := s.Eval(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "An error occurred: %s\n", err)
			} else if output != "" {
				fmt.Print(output)
				if !strings.HasSuffix(output, "\n") {
					fmt.Println()
				}
			}
		}
	}

	return nil
}

// Eval runs a single command line and returns its output.
func (s *Session) Eval(ctx context.Context, command string) (string, error) {
	if DefaultRunner == nil {
		return "", fmt.Errorf("shell runner not configured")
	}

	args := strings.Fields(command)
	if len(args) == 0 {
		return "", nil
	}

	var stdout, stderr bytes.Buffer
	err := DefaultRunner(ctx, args, &stdout, &stderr)

	output := stdout.String()
	s.LastOutput = output

	if errOut := stderr.String(); errOut != "" && err != nil {
		return output, fmt.Errorf("%s", strings.TrimSpace(errOut))
	}

	return output, err
}

// Complete returns tab-completion candidates for the given input.
func (s *Session) Complete(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return s.KnownCommands
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return s.KnownCommands
	}

	if len(parts) == 1 && !strings.HasSuffix(input, " ") {
		prefix := parts[0]
		var matches []string
		for _, cmd := range s.KnownCommands {
			if strings.HasPrefix(cmd, prefix) {
				matches = append(matches, cmd)
			}
		}
		sort.Strings(matches)
		return matches
	}

	parent := parts[0]
	subcommands := subcommandsFor(parent)
	if len(parts) == 2 && !strings.HasSuffix(input, " ") {
		prefix := parts[1]
		var matches []string
		for _, sub := range subcommands {
			if strings.HasPrefix(sub, prefix) {
				matches = append(matches, sub)
			}
		}
		return matches
	}

	if strings.HasSuffix(input, " -") || strings.HasPrefix(parts[len(parts)-1], "-") {
		return []string{"--input", "--output", "--help", "--verbose"}
	}

	return nil
}

func subcommandsFor(parent string) []string {
	subs := map[string][]string{
		"data_validation": {"fill_na", "convert_type"},
		"pipeline":        {"run", "validate"},
		"config":          {"init", "show", "get", "set", "path"},
		"completion":      {"bash", "zsh", "fish", "powershell"},
	}
	return subs[parent]
}

func (s *Session) printHelp() {
	fmt.Println("Available commands:")
	fmt.Println()
	fmt.Println("  Rows/columns:  filter, summarize, calculate, merge, sort, rename, drop_duplicates")
	fmt.Println("  Validation:    data_validation fill_na/convert_type")
	fmt.Println("  Structural:    duplicate_sheet, update_cells, chart")
	fmt.Println("  Tools:         read, pipeline, watch, config")
	fmt.Println("  System:        completion, version")
	fmt.Println()
	fmt.Println("Shell commands:")
	fmt.Println("  help       — show this help")
	fmt.Println("  history    — show command history")
	fmt.Println("  exit       — exit the shell")
}

func (s *Session) buildCompleter() []readline.PrefixCompleterInterface {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range s.KnownCommands {
		subs := subcommandsFor(cmd)
		if len(subs) > 0 {
			var subItems []readline.PrefixCompleterInterface
			for _, sub := range subs {
				subItems = append(subItems, readline.PcItem(sub))
			}
			items = append(items, readline.PcItem(cmd, subItems...))
		} else {
			items = append(items, readline.PcItem(cmd))
		}
	}
	return items
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", m, s)
}
