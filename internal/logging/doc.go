// Package logging wires log/slog for the pipeline.
//
// Two output formats are supported: a compact console handler for interactive
// terminals and JSON for everything else. The default is picked from whether
// stdout is a TTY. When a log directory is configured, all records are also
// appended to matchreel.log there; the diagnostic detail the CLI hides from
// the terminal ends up in that file.
package logging
