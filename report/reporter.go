package report

import (
	"os"
	"sync"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user.  The reporter respects the set log level and is
// synchronized: its methods can be safely called from multiple goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	errorCount, warningCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// logLevelNames maps the command-line/config spelling of each log level.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelFromName converts a log level name into its enumerated value.
func LogLevelFromName(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// exit is swapped out by tests so fatal reports do not kill the test binary.
var exit = os.Exit

// InitReporter (re)initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// LogLevel returns the log level of the global reporter.
func LogLevel() int {
	return rep.logLevel
}
