// Package msg prints messages for the gradlefile command.
//
// Informational and diagnostic messages go to Stderr so that the output of a
// command (coordinates, YAML, JSON) can be piped. Puts and Print write that
// output to Stdout.
package msg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level is the severity of a logged message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelLabels = [...]struct{ name, color string }{
	DebugLevel: {"DEBUG", Cyan},
	InfoLevel:  {"INFO", Green},
	WarnLevel:  {"WARN", Yellow},
	ErrorLevel: {"ERROR", Red},
}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelLabels[l].name
}

// Messenger provides the underlying implementation that displays output to
// users.
type Messenger struct {
	sync.Mutex

	// Quiet, if true, suppresses chatty levels, like Info.
	Quiet bool

	// IsDebugging, if true, shows verbose levels, like Debug.
	IsDebugging bool

	// NoColor, if true, will not use color in the output.
	NoColor bool

	// Stdout receives command output.
	Stdout io.Writer

	// Stderr receives log messages.
	Stderr io.Writer

	// PanicOnDie if true Die() will panic instead of exiting.
	PanicOnDie bool

	hasErrored bool
}

// NewMessenger creates a Messenger writing to the process's standard
// streams. Die exits with status 1.
func NewMessenger() *Messenger {
	return &Messenger{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Default contains a default Messenger used by package level functions
var Default = NewMessenger()

// Enabled reports whether messages at level l are shown. Quiet hides Debug
// and Info; Debug also needs IsDebugging.
func (m *Messenger) Enabled(l Level) bool {
	switch l {
	case DebugLevel:
		return m.IsDebugging && !m.Quiet
	case InfoLevel:
		return !m.Quiet
	}
	return true
}

// Log writes a message to Stderr prefixed with its level, e.g.
// "[WARN]\tsomething". Errors are remembered for HasErrored.
func (m *Messenger) Log(l Level, format string, args ...interface{}) {
	if !m.Enabled(l) {
		return
	}
	prefix := "[" + l.String() + "]\t"
	if l >= DebugLevel && l <= ErrorLevel {
		prefix = m.Color(levelLabels[l].color, prefix)
	}
	m.Msg(prefix+format, args...)

	if l == ErrorLevel {
		m.Lock()
		m.hasErrored = true
		m.Unlock()
	}
}

// Info logs information
func (m *Messenger) Info(msg string, args ...interface{}) {
	m.Log(InfoLevel, msg, args...)
}

// Info logs information using the Default Messenger
func Info(msg string, args ...interface{}) {
	Default.Log(InfoLevel, msg, args...)
}

// Debug logs debug information
func (m *Messenger) Debug(msg string, args ...interface{}) {
	m.Log(DebugLevel, msg, args...)
}

// Debug logs debug information using the Default Messenger
func Debug(msg string, args ...interface{}) {
	Default.Log(DebugLevel, msg, args...)
}

// Warn logs a warning
func (m *Messenger) Warn(msg string, args ...interface{}) {
	m.Log(WarnLevel, msg, args...)
}

// Warn logs a warning using the Default Messenger
func Warn(msg string, args ...interface{}) {
	Default.Log(WarnLevel, msg, args...)
}

// Err logs an error.
func (m *Messenger) Err(msg string, args ...interface{}) {
	m.Log(ErrorLevel, msg, args...)
}

// Err logs an error using the Default Messenger
func Err(msg string, args ...interface{}) {
	Default.Log(ErrorLevel, msg, args...)
}

// Die logs an error and ends the program with exit status 1. With
// PanicOnDie it panics instead, which lets tests recover.
func (m *Messenger) Die(msg string, args ...interface{}) {
	m.Err(msg, args...)
	if m.PanicOnDie {
		panic("trapped a Die() call")
	}
	os.Exit(1)
}

// Die is Messenger.Die on the Default Messenger.
func Die(msg string, args ...interface{}) {
	Default.Die(msg, args...)
}

// Msg writes a message to Stderr without a level prefix. A line feed is
// added when missing. Args are only interpreted when given, so a message
// holding a literal % can be passed on its own.
func (m *Messenger) Msg(msg string, args ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if len(args) == 0 {
		fmt.Fprint(m.Stderr, msg)
		return
	}
	fmt.Fprintf(m.Stderr, msg, args...)
}

// Msg is Messenger.Msg on the Default Messenger.
func Msg(msg string, args ...interface{}) {
	Default.Msg(msg, args...)
}

// Puts formats a line of command output and writes it to Stdout, followed by
// a line feed. Nothing is prefixed or colored.
func (m *Messenger) Puts(msg string, args ...interface{}) {
	m.Lock()
	defer m.Unlock()

	fmt.Fprintf(m.Stdout, msg, args...)
	fmt.Fprintln(m.Stdout)
}

// Puts is Messenger.Puts on the Default Messenger.
func Puts(msg string, args ...interface{}) {
	Default.Puts(msg, args...)
}

// Print writes exactly the string given to Stdout.
func (m *Messenger) Print(msg string) {
	m.Lock()
	defer m.Unlock()

	fmt.Fprint(m.Stdout, msg)
}

// Print is Messenger.Print on the Default Messenger.
func Print(msg string) {
	Default.Print(msg)
}

// HasErrored returns if Err has been called.
//
// The command uses this to exit non-zero after errors that did not stop it.
func (m *Messenger) HasErrored() bool {
	m.Lock()
	defer m.Unlock()
	return m.hasErrored
}

// HasErrored reports whether the Default Messenger has logged an error.
func HasErrored() bool {
	return Default.HasErrored()
}

// Color returns a string in a certain color if colors are enabled and
// available on that platform.
func Color(code, msg string) string {
	return Default.Color(code, msg)
}
