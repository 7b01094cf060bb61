// Package idgen wraps the UUID generator behind a stubbable function.
// Callers should treat the returned identifiers as opaque strings; the
// gateway uses them to key per-client terminal sessions.
package idgen
