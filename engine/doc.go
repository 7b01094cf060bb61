// Package engine implements the command dispatch core of termsh: session
// state (virtual working directory, environment snapshot, history), the
// command registry and the execute operation that routes a raw command line
// to a built-in handler or the external fallback.
//
// The engine is purely synchronous and holds no locks; callers that share a
// single engine across goroutines must serialize access, or create one
// session per client.
package engine
