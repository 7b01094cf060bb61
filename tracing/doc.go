// Package tracing provides a thin wrapper around OpenTelemetry so the rest
// of the code base can start and end spans without depending on the upstream
// API. The engine opens one span per executed command; initialisation is
// opt-in via termsh.WithTracing.
package tracing
