package engine

import (
	"context"
	"fmt"
	"strings"
)

// registerCore binds the built-ins that need access to the registry or the
// history log.
func (e *Engine) registerCore() {
	e.registry.Register("help", "Display help information", e.help)
	e.registry.Register("history", "Show command history", e.history)
	e.registry.Register("clear", "Clear terminal screen", e.clear)
	e.registry.Describe("exit", "Exit terminal")
	e.registry.Describe("quit", "Exit terminal")
}

func (e *Engine) help(_ context.Context, args []string) (string, error) {
	if len(args) == 0 {
		var b strings.Builder
		b.WriteString("Available commands:\n")
		b.WriteString(strings.Repeat("=", 50) + "\n")
		for _, name := range e.registry.Names() {
			description, _ := e.registry.Description(name)
			fmt.Fprintf(&b, "%-15s - %s\n", name, description)
		}
		b.WriteString("\nFor more information on a specific command, type: help <command>")
		return b.String(), nil
	}

	name := strings.ToLower(args[0])
	if description, ok := e.registry.Description(name); ok {
		return fmt.Sprintf("%v: %v", name, description), nil
	}
	return fmt.Sprintf("No help available for '%v'. Type 'help' for available commands.", name), nil
}

func (e *Engine) history(_ context.Context, _ []string) (string, error) {
	entries := e.session.History().Last(e.historyDisplaySize)
	if len(entries) == 0 {
		return "No command history available.", nil
	}

	var b strings.Builder
	b.WriteString("Command History:\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%3d  %s  %s\n", i+1, entry.Timestamp.Format("15:04:05"), entry.Command)
	}
	return b.String(), nil
}

// clear produces empty output; the actual screen reset is a front-end
// concern.
func (e *Engine) clear(_ context.Context, _ []string) (string, error) {
	return "", nil
}
