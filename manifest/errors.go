package manifest

import (
	"errors"
	"fmt"
)

// The kinds of failure reported by Parse. A *ParseError unwraps to one of
// these so callers can test with errors.Is.
var (
	// ErrMalformedManifest is a structural failure: a missing dependencies
	// block, unbalanced braces, or a coordinate that does not split into
	// group, artifact and version.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrUnsupportedDeclarationForm is a dependency written in a shape other
	// than a coordinate string or group/name/version arguments.
	ErrUnsupportedDeclarationForm = errors.New("unsupported declaration form")

	// ErrDuplicateDependency is returned when RejectDuplicates is in effect
	// and a dependency is declared twice in the same configuration.
	ErrDuplicateDependency = errors.New("duplicate dependency")
)

// ParseError describes the declaration that made Parse fail.
type ParseError struct {
	Kind  error
	Line  int
	Block string
	Text  string
	Msg   string
}

func (e *ParseError) Error() string {
	where := "top level"
	if e.Block != "" {
		where = e.Block + " block"
	}
	if e.Text == "" {
		return fmt.Sprintf("%s: line %d (%s): %s", e.Kind, e.Line, where, e.Msg)
	}
	return fmt.Sprintf("%s: line %d (%s): %s: %s", e.Kind, e.Line, where, e.Msg, e.Text)
}

// Unwrap returns the kind so errors.Is(err, ErrMalformedManifest) works.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func malformed(line int, block, text, format string, args ...interface{}) error {
	return &ParseError{Kind: ErrMalformedManifest, Line: line, Block: block, Text: text, Msg: fmt.Sprintf(format, args...)}
}

func unsupported(line int, block, text, format string, args ...interface{}) error {
	return &ParseError{Kind: ErrUnsupportedDeclarationForm, Line: line, Block: block, Text: text, Msg: fmt.Sprintf(format, args...)}
}
