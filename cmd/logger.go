package cmd

import (
	"github.com/abdosharaf9/Simple-Compiler/report"
	"go.uber.org/zap"
)

// newLogger creates the developer trace logger.  Tracing is off unless the
// debug flag is set.
func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		report.ReportFatal("failed to create logger: %s", err)
	}

	return log
}
