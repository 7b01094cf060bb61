package engine

// Result is the outcome of a single command execution. Output carries the
// text a front end should display, ExitCode follows shell conventions and
// Error is populated only for unexpected engine faults, never for ordinary
// command failures.
type Result struct {
	Output   string `json:"output"`
	ExitCode int    `json:"exit_code"`
	Error    string `json:"error"`
}

// Failed reports whether the command finished with a non-zero exit code.
func (r *Result) Failed() bool {
	return r.ExitCode != 0
}
