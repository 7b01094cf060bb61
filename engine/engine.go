package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/termsh/tracing"
)

// Farewell is the sentinel output produced by exit/quit. The engine never
// terminates the process itself; front ends watch for the command name and
// shut down their own loop.
const Farewell = "Goodbye!"

const defaultHistoryDisplaySize = 20

// Fallback executes an unrecognised command line against the host operating
// system shell.
type Fallback interface {
	Run(ctx context.Context, commandLine string) *Result
}

// Option customizes an Engine.
type Option func(e *Engine)

// WithHistoryDisplaySize overrides how many entries the history built-in
// shows.
func WithHistoryDisplaySize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.historyDisplaySize = size
		}
	}
}

// Engine owns command dispatch for one session: it parses a raw command
// line, records history, routes to a built-in handler or the external
// fallback and converts the outcome into a Result.
type Engine struct {
	session            *Session
	registry           *Registry
	fallback           Fallback
	historyDisplaySize int
}

// New creates an engine over the supplied session, registry and fallback.
// The registry is expected to be fully populated by the caller; the engine
// adds its own help, history and clear built-ins, which need registry or
// history access.
func New(session *Session, registry *Registry, fallback Fallback, options ...Option) *Engine {
	e := &Engine{
		session:            session,
		registry:           registry,
		fallback:           fallback,
		historyDisplaySize: defaultHistoryDisplaySize,
	}
	for _, option := range options {
		option(e)
	}
	e.registerCore()
	return e
}

// Session exposes the session state for front ends (prompt, directory
// display).
func (e *Engine) Session() *Session {
	return e.session
}

// Registry exposes the command registry, e.g. for the advisor.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Execute runs a single command line and returns its result. Empty input is
// a no-op. Every non-empty line is appended to history before dispatch,
// including ones that subsequently fail. Unexpected faults are recovered and
// reported through Result.Error with exit code 1.
func (e *Engine) Execute(ctx context.Context, commandLine string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			result = &Result{ExitCode: 1, Error: fmt.Sprintf("%v", r)}
		}
	}()

	trimmed := strings.TrimSpace(commandLine)
	if trimmed == "" {
		return &Result{}
	}
	e.session.Record(commandLine)

	parts := strings.Fields(trimmed)
	name := strings.ToLower(parts[0])
	args := parts[1:]

	ctx, span := tracing.StartSpan(ctx, "engine.execute", "INTERNAL")
	span.WithAttributes(map[string]string{"command": name})
	defer tracing.EndSpan(span, nil)

	if name == "exit" || name == "quit" {
		return &Result{Output: Farewell}
	}

	if handler, ok := e.registry.Lookup(name); ok {
		output, err := handler(ctx, args)
		if err != nil {
			return &Result{Output: err.Error(), ExitCode: 1}
		}
		return &Result{Output: output}
	}

	if e.fallback == nil {
		return &Result{ExitCode: 1, Error: fmt.Sprintf("%v: command not found", name)}
	}
	return e.fallback.Run(ctx, trimmed)
}
