package log

import "github.com/pterm/pterm"

// Info prints a human-facing status line. Unlike Log, this goes to
// stdout and is meant to be read by the person running the CLI, not
// replayed from the trace file.
func Info(format string, opts ...interface{}) {
	pterm.Info.Printfln(format, opts...)
}

// Warn prints a human-facing warning line; the CLI uses it to report
// that a grammar has LL(1) conflicts.
func Warn(format string, opts ...interface{}) {
	pterm.Warning.Printfln(format, opts...)
}

// Error prints a human-facing error line.
func Error(format string, opts ...interface{}) {
	pterm.Error.Printfln(format, opts...)
}

// DisableColor turns off pterm's ANSI styling; the CLI calls it when
// the config sets color = false.
func DisableColor() {
	pterm.DisableColor()
}
