// Package termsh provides an embeddable command-terminal engine: built-in
// file, system and search commands with conventional shell semantics, an
// external fallback that delegates unrecognised lines to the host shell,
// and a per-session virtual working directory independent of the real
// process one.
//
// End-users typically interact through the façade exposed by this package:
//
//	srv := termsh.New()
//	term, _ := srv.NewTerminal()
//	result := term.Engine.Execute(ctx, "ls -la")
//
// Front ends live under console/ (interactive REPL) and gateway/
// (HTTP/WebSocket); both only render Results and hold no command logic.
package termsh
