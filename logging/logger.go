// Package logging is a verbosity-gated singleton over the standard log
// package. Library packages stay silent; the command layer and the
// interactive editor log through this.
package logging

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"
)

var Logger DefaultLogger
var once sync.Once

// Verbosity is an enumerated type for defining the level of verbosity.
type Verbosity int

const (
	LowVerbosity    Verbosity = iota // LowVerbosity only reports errors
	MediumVerbosity                  // MediumVerbosity reports warnings and errors
	HighVerbosity                    // HighVerbosity reports infos, warnings and errors
)

// DefaultLogger is the package's built-in logger. It uses log.Default() as
// the underlying logger.
type DefaultLogger struct {
	verbosity Verbosity
	l         *log.Logger
}

// NewDefaultLoggerWithVerbosity creates an instance of DefaultLogger with a
// user-defined verbosity.
func NewDefaultLoggerWithVerbosity(verbosity Verbosity) *DefaultLogger {
	return &DefaultLogger{
		verbosity: verbosity,
		l:         log.Default(),
	}
}

// Init initializes the singleton logger. Called once from the command layer
// when the application starts up; later calls are ignored.
func Init(verbosity Verbosity) {
	once.Do(func() {
		Logger = *NewDefaultLoggerWithVerbosity(verbosity)
	})
}

// SetVerbosity changes the singleton's verbosity at runtime.
func SetVerbosity(verbosity Verbosity) {
	Logger.verbosity = verbosity
}

// SetOutput redirects the log. The interactive editor points it at a file
// while it owns the terminal.
func SetOutput(w io.Writer) {
	if Logger.l == nil {
		Init(LowVerbosity)
	}
	Logger.l.SetOutput(w)
}

// Debugf writes a debug message to the log (only at HighVerbosity).
func Debugf(format string, o ...interface{}) {
	if Logger.l != nil && Logger.verbosity == HighVerbosity {
		Logger.l.Printf("DEBUG\t%s\t%s", callerName(), fmt.Sprintf(format, o...))
	}
}

// Infof writes an informative message to the log (only at HighVerbosity).
func Infof(format string, o ...interface{}) {
	if Logger.l != nil && Logger.verbosity == HighVerbosity {
		Logger.l.Printf("INFO\t%s\t%s", callerName(), fmt.Sprintf(format, o...))
	}
}

// Warnf writes a warning message to the log (unless verbosity is low).
func Warnf(format string, o ...interface{}) {
	if Logger.l != nil && Logger.verbosity >= MediumVerbosity {
		Logger.l.Printf("WARN\t%s\t%s", callerName(), fmt.Sprintf(format, o...))
	}
}

// Errorf writes an error message to the log at any verbosity.
func Errorf(format string, o ...interface{}) {
	if Logger.l != nil {
		Logger.l.Printf("ERROR\t%s\t%s", callerName(), fmt.Sprintf(format, o...))
	}
}

func callerName() string {
	pc, _, _, _ := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if details == nil {
		return "?"
	}
	return details.Name()
}
