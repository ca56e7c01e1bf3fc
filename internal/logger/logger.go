package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colour printers for each log level. Info is green, Warn bright magenta,
// Error red and Debug cyan, matching what users of the tool are used to seeing.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// out receives Info, Warn and Debug messages; errOut receives Error messages.
// Both default to the colour-aware writers exported by fatih/color.
var (
	out    io.Writer = color.Output
	errOut io.Writer = color.Error
)

// debugEnabled toggles Debug output. It is set by Init from the --debug flag.
var debugEnabled bool

// Init configures the logger from the global command-line flags.
// Parameters:
// - enableDebug: turn Debug messages on or off.
// - noColor: strip ANSI colours from every level.
func Init(enableDebug, noColor bool) {
	debugEnabled = enableDebug
	if noColor {
		color.NoColor = true
	}
}

// SetOutput redirects all log levels to w and returns a function restoring
// the previous writers.
func SetOutput(w io.Writer) (restore func()) {
	prevOut, prevErr := out, errOut
	out, errOut = w, w
	return func() {
		out, errOut = prevOut, prevErr
	}
}

// Info logs informational messages in green.
func Info(format string, a ...any) {
	infoColor.Fprintf(out, format, a...)
}

// Warn logs warnings in bright magenta.
func Warn(format string, a ...any) {
	warnColor.Fprintf(out, format, a...)
}

// Error logs errors in red to the error stream.
func Error(format string, a ...any) {
	errorColor.Fprintf(errOut, format, a...)
}

// Debug logs in cyan when debug logging is enabled, otherwise it is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	debugColor.Fprintf(out, format, a...)
}
