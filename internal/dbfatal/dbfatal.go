// Package dbfatal is the single place that turns a core integrity, I/O, or
// capacity failure (spec §4.9, §7) into a logged diagnostic and a process
// exit. Nothing in the core calls os.Exit directly; it all funnels here.
package dbfatal

import (
	"os"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs the logger used for fatal diagnostics. Call once from
// main after parsing --log-level.
func SetLogger(l *zap.SugaredLogger) { logger = l }

// Fatalf logs msg with args at error level and exits with status 1.
// There is no return: the process terminates here, matching the teacher's
// fmt.Printf + os.Exit(1) pairing on every fatal path.
func Fatalf(msg string, args ...any) {
	logger.Errorf(msg, args...)
	os.Exit(1)
}

// Fatalw logs a structured message with key/value fields and exits.
func Fatalw(msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
	os.Exit(1)
}
