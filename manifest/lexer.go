package manifest

import "strings"

type eventKind int

const (
	stmtEvent eventKind = iota
	openEvent
	closeEvent
)

// event is a statement, the header of a block ("dependencies" in
// "dependencies {"), or the end of a block. comments holds the text of the
// comments that trail it on its own line.
type event struct {
	kind     eventKind
	text     string
	line     int
	end      int
	comments []string
}

// lex splits a build script into events. Newlines and semicolons end a
// statement unless a parenthesis is still open. Braces only count outside
// of parentheses and string literals.
func lex(src string) ([]*event, error) {
	l := &lexer{src: src, line: 1}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.events, nil
}

type lexer struct {
	src    string
	pos    int
	line   int
	parens int

	buf   strings.Builder
	start int
	notes []string

	events []*event
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '"' || c == '\'':
			if err := l.quoted(c); err != nil {
				return err
			}
			continue
		case c == '/' && l.peek(1) == '/':
			l.lineComment()
			continue
		case c == '/' && l.peek(1) == '*':
			if err := l.blockComment(); err != nil {
				return err
			}
			continue
		case c == '\n':
			if l.parens == 0 && !l.braceFollows() {
				l.flush()
			} else {
				l.write(' ')
			}
			l.line++
		case c == ';' && l.parens == 0:
			l.flush()
		case c == '(':
			l.parens++
			l.write(c)
		case c == ')':
			if l.parens == 0 {
				return malformed(l.line, "", l.pending(), "unexpected ')'")
			}
			l.parens--
			l.write(c)
		case c == '{' && l.parens == 0:
			l.emit(openEvent)
		case c == '}' && l.parens == 0:
			l.flush()
			l.emit(closeEvent)
		default:
			l.write(c)
		}
		l.pos++
	}
	if l.parens > 0 {
		return malformed(l.start, "", l.pending(), "unterminated '('")
	}
	l.flush()
	return nil
}

func (l *lexer) peek(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

// braceFollows reports whether the next significant character after the
// current newline opens a block, as in Groovy's
//
//	dependencies
//	{
func (l *lexer) braceFollows() bool {
	if strings.TrimSpace(l.buf.String()) == "" {
		return false
	}
	for i := l.pos + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func (l *lexer) write(c byte) {
	if l.buf.Len() == 0 {
		if c == ' ' || c == '\t' || c == '\r' {
			return
		}
		l.start = l.line
	}
	l.buf.WriteByte(c)
}

func (l *lexer) pending() string {
	return strings.TrimSpace(l.buf.String())
}

func (l *lexer) quoted(q byte) error {
	line := l.line
	if q == '"' && strings.HasPrefix(l.src[l.pos:], `"""`) {
		end := strings.Index(l.src[l.pos+3:], `"""`)
		if end < 0 {
			return malformed(line, "", l.pending(), "unterminated string")
		}
		raw := l.src[l.pos : l.pos+3+end+3]
		for i := 0; i < len(raw); i++ {
			l.write(raw[i])
		}
		l.line += strings.Count(raw, "\n")
		l.pos += len(raw)
		return nil
	}

	l.write(q)
	l.pos++
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '\\':
			l.write(c)
			if l.pos+1 < len(l.src) {
				l.write(l.src[l.pos+1])
			}
			l.pos += 2
			continue
		case '\n':
			return malformed(line, "", l.pending(), "unterminated string")
		}
		l.write(c)
		l.pos++
		if c == q {
			return nil
		}
	}
	return malformed(line, "", l.pending(), "unterminated string")
}

func (l *lexer) lineComment() {
	end := strings.IndexByte(l.src[l.pos:], '\n')
	if end < 0 {
		end = len(l.src) - l.pos
	}
	l.attach(l.src[l.pos+2 : l.pos+end])
	l.pos += end
}

func (l *lexer) blockComment() error {
	end := strings.Index(l.src[l.pos+2:], "*/")
	if end < 0 {
		return malformed(l.line, "", "", "unterminated comment")
	}
	body := l.src[l.pos+2 : l.pos+2+end]
	l.attach(body)
	l.line += strings.Count(body, "\n")
	l.pos += 2 + end + 2
	if l.buf.Len() > 0 {
		l.write(' ')
	}
	return nil
}

// attach gives comment text to the statement being read, or else to the
// last event if that ended on the current line. Comments on a line of their
// own belong to nothing.
func (l *lexer) attach(text string) {
	if l.pending() != "" {
		l.notes = append(l.notes, text)
		return
	}
	if n := len(l.events); n > 0 && l.events[n-1].end == l.line {
		l.events[n-1].comments = append(l.events[n-1].comments, text)
	}
}

func (l *lexer) flush() {
	if l.pending() == "" {
		l.reset()
		return
	}
	l.emit(stmtEvent)
}

func (l *lexer) emit(kind eventKind) {
	e := &event{
		kind:     kind,
		text:     l.pending(),
		line:     l.start,
		end:      l.line,
		comments: l.notes,
	}
	if e.text == "" {
		e.line = l.line
	}
	l.events = append(l.events, e)
	l.reset()
}

func (l *lexer) reset() {
	l.buf.Reset()
	l.notes = nil
}
