// Package applog is a small leveled wrapper over the standard library log
// package, modeled on this codebase's own convention for a standalone
// command-line tool's diagnostics (see cc-backend's pkg/log): one prefixed
// *log.Logger per level, all writing to stderr so stdout stays reserved
// for the simulator's single metrics line.
package applog

import (
	"io"
	"log"
	"os"
)

var (
	noticeWriter io.Writer = os.Stderr
	debugWriter  io.Writer = os.Stderr
)

var (
	noticeLog = log.New(noticeWriter, "<6>[NOTICE] ", 0)
	debugLog  = log.New(debugWriter, "<7>[DEBUG]  ", 0)
)

// debugEnabled gates Debugf; Noticef is always emitted, matching the
// --verbose flag's scope (heartbeat/progress lines only).
var debugEnabled bool

// SetVerbose toggles whether Debugf actually writes.
func SetVerbose(v bool) { debugEnabled = v }

// Noticef logs a one-line notice, e.g. the derived geometry of a freshly
// constructed hierarchy.
func Noticef(format string, args ...any) {
	noticeLog.Printf(format, args...)
}

// Debugf logs a one-line debug message, e.g. a progress heartbeat, only
// when verbose mode is enabled.
func Debugf(format string, args ...any) {
	if debugEnabled {
		debugLog.Printf(format, args...)
	}
}
