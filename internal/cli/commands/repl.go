package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile search queries",
		Long: `Start an interactive loop that compiles each entered query and prints
the row-level condition with its bindings.

Dot-commands switch the output target:
  .devices   compile to the device-level subquery
  .row       compile to the row-level condition (default)
  .quit      exit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext()
	out := cmd.OutOrStdout()

	historyFile := filepath.Join(os.TempDir(), "credsift_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "credsift> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(out, "credsift REPL (dialect: %s)\n", cc.Compiler.Dialect().Name)
	_, _ = fmt.Fprintln(out, "Type a search query, .devices / .row to switch targets, .quit to exit")
	_, _ = fmt.Fprintln(out)

	devices := false
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case ".quit", ".exit":
			return nil
		case ".devices":
			devices = true
			_, _ = fmt.Fprintln(out, "compiling to device-level subqueries")
			continue
		case ".row":
			devices = false
			_, _ = fmt.Fprintln(out, "compiling to row-level conditions")
			continue
		}

		parsed := query.Parse(line)
		var clause = cc.Compiler.RowCondition(parsed, cc.defaultField())
		if devices {
			clause = cc.Compiler.AggregateSubquery(parsed, cc.defaultField(), cc.Cfg.EntityColumn, cc.Cfg.Table)
		}
		if err := renderClause(out, clause, cc.Cfg.Format); err != nil {
			_, _ = fmt.Fprintf(out, "error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}
	return nil
}
