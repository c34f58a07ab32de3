package report

import "fmt"

// Context is the source a diagnostic refers to.  It lets the display show the
// offending line without reopening the file.
type Context struct {
	// FilePath is the representative path of the source.
	FilePath string

	// Lines holds the raw source text split by line.
	Lines []string
}

// ReportCompileError reports a compilation error: ie. erroneous input code.
func ReportCompileError(ctx *Context, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage(ctx, cerr.Kind.String()+" Error", cerr.Line, cerr.Message, true)
	}
}

// ReportCompileWarning reports a compilation warning on the given line.
func ReportCompileWarning(ctx *Context, line int, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		displayCompileMessage(ctx, "Warning", line, fmt.Sprintf(message, args...), false)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayStdError(tag, err)
	}
}

// ReportInfo displays an informational message in verbose mode.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}

// ReportPhase announces the start of a compilation phase.
func ReportPhase(title string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayPhase(title)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately but which are not caused by source text:
// bad configuration, unreadable files, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		displayFatal(fmt.Sprintf(message, args...))
		rep.m.Unlock()
	}

	exit(1)
}

// ReportICE reports an internal compiler error.  These are never supposed to
// happen and are always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	displayICE(fmt.Sprintf(message, args...))
	rep.m.Unlock()

	exit(-1)
}

// ReportCompilationFinished displays the concluding message of a run.
func ReportCompilationFinished() {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompilationFinished(rep.errorCount, rep.warningCount)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// WarningCount returns the number of warnings reported so far.
func WarningCount() int {
	return rep.warningCount
}
