// Package console provides the interactive REPL front end. It renders
// engine results and owns loop control (prompt, Ctrl-C confirmation,
// farewell); all command logic stays in the engine.
package console

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/viant/termsh"
)

// Console is the interactive command-line front end.
type Console struct {
	terminal     *termsh.Terminal
	rl           *readline.Instance
	out          io.Writer
	commandCount int
}

// New creates a console over the supplied terminal. The history file is
// optional.
func New(terminal *termsh.Terminal, historyFile string) (*Console, error) {
	c := &Console{terminal: terminal}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.prompt(),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    newCompleter(terminal.Advisor),
	})
	if err != nil {
		return nil, err
	}
	c.rl = rl
	c.out = rl.Stdout()
	return c, nil
}

// Run starts the read-eval-print loop and blocks until the user exits.
func (c *Console) Run(ctx context.Context) error {
	defer c.rl.Close()
	c.printWelcome()

	interrupted := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.rl.SetPrompt(c.prompt())
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			if interrupted {
				c.printFarewell()
				return nil
			}
			interrupted = true
			fmt.Fprintln(c.out, "Type 'exit' to quit or press Ctrl+C again to force quit.")
			continue
		}
		if err == io.EOF {
			c.printFarewell()
			return nil
		}
		if err != nil {
			return err
		}
		interrupted = false

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.commandCount++

		name := strings.ToLower(strings.Fields(line)[0])
		result := c.terminal.Engine.Execute(ctx, line)

		if name == "clear" && !result.Failed() {
			fmt.Fprint(c.out, "\033[H\033[2J")
			continue
		}
		if result.Output != "" {
			fmt.Fprintln(c.out, result.Output)
		}
		if result.Error != "" {
			fmt.Fprintf(c.out, "Error: %v\n", result.Error)
		}
		if result.Failed() && result.Output == "" && result.Error == "" {
			fmt.Fprintf(c.out, "Command exited with code: %d\n", result.ExitCode)
		}
		if result.Failed() {
			c.adviseOnFailure(name)
		}
		if name == "exit" || name == "quit" {
			c.printFarewell()
			return nil
		}
	}
}

// adviseOnFailure prints typo suggestions when a failed command resembles a
// known one. Purely advisory; nothing is re-executed.
func (c *Console) adviseOnFailure(name string) {
	if _, ok := c.terminal.Engine.Registry().Description(name); ok {
		return
	}
	suggestions := c.terminal.Advisor.Corrections(name)
	if len(suggestions) == 0 {
		return
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	fmt.Fprintf(c.out, "Did you mean: %v?\n", strings.Join(suggestions, ", "))
}

func (c *Console) prompt() string {
	dir := c.terminal.Engine.Session().Directory()
	base := filepath.Base(dir)
	if base == "" {
		base = dir
	}
	return fmt.Sprintf("\033[32m%s $\033[0m ", base)
}

func (c *Console) printWelcome() {
	fmt.Fprintln(c.out, "termsh - command terminal")
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
	fmt.Fprintln(c.out, "File operations, system monitoring, search and more.")
	fmt.Fprintln(c.out, "Type 'help' for available commands or 'exit' to quit.")
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
}

func (c *Console) printFarewell() {
	if c.commandCount > 0 {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Session summary:")
		fmt.Fprintf(c.out, "  Commands executed: %d\n", c.commandCount)
		fmt.Fprintf(c.out, "  Current directory: %v\n", c.terminal.Engine.Session().Directory())
	}
	fmt.Fprintln(c.out, "Goodbye!")
}
