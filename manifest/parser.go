package manifest

import (
	"regexp"
	"strings"

	"github.com/Masterminds/gradlefile/catalog"
)

var qx = `"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`
var nx = `([A-Za-z_]\w*)\s*[:=]\s*(` + qx + `)`
var reQuoted = regexp.MustCompile(qx)
var reAssign = regexp.MustCompile(`^(group|version)\s*=?\s*(` + qx + `)$`)
var reApplyPlugin = regexp.MustCompile(`^apply\s*\(?\s*plugin\s*[:=]\s*(` + qx + `)\s*\)?$`)
var rePlugin = regexp.MustCompile(`^(?:id\s*\(?\s*(` + qx + `)\s*\)?|kotlin\s*\(\s*(` + qx + `)\s*\)|` + "`([^`]+)`" + `|([A-Za-z][\w.-]*))(?:\s+version\s*\(?\s*(` + qx + `)\s*\)?)?(?:\s+apply\s*\(?\s*(?:true|false)\s*\)?)?$`)
var reRepoName = regexp.MustCompile(`^([A-Za-z]\w*)\s*\(\s*\)$`)
var reDepCall = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\((.*)\)|\s+(.+))$`)
var reString = regexp.MustCompile(`^(?:` + qx + `)$`)
var reNamedArgs = regexp.MustCompile(`^` + nx + `(?:\s*,\s*` + nx + `)*$`)
var reNamedArg = regexp.MustCompile(nx)
var reCatalogRef = regexp.MustCompile(`^libs(?:\.[A-Za-z_]\w*)+$`)

// Parser turns build script text into a Manifest.
type Parser struct {
	// Duplicates decides what happens when a dependency is declared twice in
	// the same configuration. The zero value keeps every declaration.
	Duplicates DuplicatePolicy

	// Catalog resolves libs.* references. When nil, such references fail
	// with ErrUnsupportedDeclarationForm.
	Catalog *catalog.Catalog
}

// Parse parses text using a Parser with default settings.
func Parse(text string) (*Manifest, error) {
	return (&Parser{}).Parse(text)
}

// Parse parses the plugins, group, version, repositories, dependencies and
// task blocks of a build script. Blocks it does not understand are skipped.
//
// Parsing is all or nothing: on error the Manifest is nil and the error is a
// *ParseError naming the offending line.
func (p *Parser) Parse(text string) (*Manifest, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	events, err := lex(text)
	if err != nil {
		return nil, err
	}

	b := &builder{p: p, m: &Manifest{}}
	for _, e := range events {
		if err := b.handle(e); err != nil {
			return nil, err
		}
	}
	if n := len(b.stack); n > 0 {
		f := b.stack[n-1]
		return nil, malformed(f.line, f.name, "", "block is never closed")
	}
	if !b.sawDependencies {
		return nil, malformed(strings.Count(text, "\n")+1, "", "", "no dependencies block")
	}

	deps, err := p.Duplicates.apply(b.m.dependencies)
	if err != nil {
		return nil, err
	}
	b.m.dependencies = deps

	return b.m, nil
}

type blockKind int

const (
	skipBlock blockKind = iota
	pluginsBlock
	repositoriesBlock
	repositoryBlock
	dependenciesBlock
	taskBlock
)

type frame struct {
	kind blockKind
	name string
	line int

	// For a closure that follows a dependency declaration, the index of
	// that dependency and the line the closure opened on. Otherwise dep
	// is -1.
	dep     int
	openEnd int
}

type builder struct {
	p               *Parser
	m               *Manifest
	stack           []frame
	sawDependencies bool
}

func (b *builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

func (b *builder) push(kind blockKind, e *event) {
	b.stack = append(b.stack, frame{kind: kind, name: e.text, line: e.line, dep: -1, openEnd: e.end})
}

func (b *builder) handle(e *event) error {
	switch e.kind {
	case closeEvent:
		if len(b.stack) == 0 {
			return malformed(e.line, "", "}", "unexpected closing brace")
		}
		f := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		// A comment after a one-line closure still annotates the
		// declaration that opened it.
		if f.dep >= 0 && len(e.comments) > 0 && e.end == f.openEnd {
			d := &b.m.dependencies[f.dep]
			d.Annotations = annotationTokens(e.comments, d.Annotations)
		}
		return nil
	case openEvent:
		return b.open(e)
	}

	f := b.top()
	if f == nil {
		b.topLevel(e)
		return nil
	}
	switch f.kind {
	case pluginsBlock:
		return b.plugin(e, f.name)
	case repositoriesBlock:
		return b.repository(e, f.name)
	case repositoryBlock:
		if strings.HasPrefix(e.text, "url") || strings.HasPrefix(e.text, "setUrl") {
			if u := firstQuoted(e.text); u != "" {
				b.addRepository(u)
			}
		}
	case dependenciesBlock:
		d, err := b.dependency(e, f.name)
		if err != nil {
			return err
		}
		b.m.dependencies = append(b.m.dependencies, d)
	case taskBlock:
		t := &b.m.tasks[len(b.m.tasks)-1]
		t.Statements = append(t.Statements, e.text)
	}
	return nil
}

func (b *builder) open(e *event) error {
	f := b.top()
	if f == nil {
		switch {
		case e.text == "plugins":
			b.push(pluginsBlock, e)
		case e.text == "repositories":
			b.push(repositoriesBlock, e)
		case e.text == "dependencies":
			b.sawDependencies = true
			b.push(dependenciesBlock, e)
		case isTaskHeader(e.text):
			b.m.tasks = append(b.m.tasks, Task{Name: taskName(e.text)})
			b.push(taskBlock, e)
		default:
			b.push(skipBlock, e)
		}
		return nil
	}

	switch f.kind {
	case pluginsBlock:
		return malformed(e.line, f.name, e.text, "unexpected block")
	case repositoriesBlock:
		if u := firstQuoted(e.text); u != "" {
			b.addRepository(u)
			b.push(skipBlock, e)
		} else if e.text == "maven" || e.text == "ivy" {
			b.push(repositoryBlock, e)
		} else {
			b.push(skipBlock, e)
		}
	case dependenciesBlock:
		// A declaration followed by a configuration closure, such as
		// implementation("g:a:v") { exclude(...) }.
		d, err := b.dependency(e, f.name)
		if err != nil {
			return err
		}
		b.m.dependencies = append(b.m.dependencies, d)
		b.push(skipBlock, e)
		b.top().dep = len(b.m.dependencies) - 1
	case taskBlock:
		t := &b.m.tasks[len(b.m.tasks)-1]
		t.Statements = append(t.Statements, e.text+" { ... }")
		b.push(skipBlock, e)
	default:
		b.push(skipBlock, e)
	}
	return nil
}

func (b *builder) topLevel(e *event) {
	if m := reAssign.FindStringSubmatch(e.text); m != nil {
		switch m[1] {
		case "group":
			b.m.group = unquote(m[2])
		case "version":
			b.m.version = unquote(m[2])
		}
		return
	}
	if m := reApplyPlugin.FindStringSubmatch(e.text); m != nil {
		b.m.plugins = append(b.m.plugins, Plugin{ID: unquote(m[1])})
	}
}

func (b *builder) plugin(e *event, block string) error {
	m := rePlugin.FindStringSubmatch(e.text)
	if m == nil {
		return malformed(e.line, block, e.text, "unrecognized plugin declaration")
	}
	p := Plugin{Version: unquote(m[5])}
	switch {
	case m[1] != "":
		p.ID = unquote(m[1])
	case m[2] != "":
		p.ID = "org.jetbrains.kotlin." + unquote(m[2])
	case m[3] != "":
		p.ID = m[3]
	default:
		p.ID = m[4]
	}
	b.m.plugins = append(b.m.plugins, p)
	return nil
}

func (b *builder) repository(e *event, block string) error {
	if m := reRepoName.FindStringSubmatch(e.text); m != nil {
		b.addRepository(m[1])
		return nil
	}
	if strings.HasPrefix(e.text, "maven") || strings.HasPrefix(e.text, "ivy") {
		if u := firstQuoted(e.text); u != "" {
			b.addRepository(u)
			return nil
		}
	}
	return malformed(e.line, block, e.text, "unrecognized repository")
}

func (b *builder) addRepository(r string) {
	if !stringsContain(b.m.repositories, r) {
		b.m.repositories = append(b.m.repositories, r)
	}
}

func (b *builder) dependency(e *event, block string) (Dependency, error) {
	m := reDepCall.FindStringSubmatch(e.text)
	if m == nil {
		return Dependency{}, unsupported(e.line, block, e.text, "not a dependency declaration")
	}
	args := strings.TrimSpace(m[2])
	if m[3] != "" {
		args = strings.TrimSpace(m[3])
	}

	d := Dependency{
		Configuration: Configuration(m[1]),
		Line:          e.line,
		Annotations:   annotationTokens(e.comments, nil),
	}

	switch {
	case reString.MatchString(args):
		v := unquote(args)
		if strings.Contains(v, "$") {
			return d, unsupported(e.line, block, e.text, "string templates are not supported")
		}
		parts := strings.Split(v, ":")
		if len(parts) != 3 {
			return d, malformed(e.line, block, e.text, "coordinate %q is not group:artifact:version", v)
		}
		d.Coordinate = Coordinate{
			Group:    strings.TrimSpace(parts[0]),
			Artifact: strings.TrimSpace(parts[1]),
			Version:  strings.TrimSpace(parts[2]),
		}
		d.Form = StringForm
	case reNamedArgs.MatchString(args):
		c, err := namedCoordinate(args, e, block)
		if err != nil {
			return d, err
		}
		d.Coordinate = c
		d.Form = NamedForm
	case reCatalogRef.MatchString(args):
		if b.p.Catalog == nil {
			return d, unsupported(e.line, block, e.text, "version catalog reference without a catalog")
		}
		lib, err := b.p.Catalog.Resolve(args)
		if err != nil {
			return d, malformed(e.line, block, e.text, "%s", err)
		}
		d.Coordinate = Coordinate{Group: lib.Group, Artifact: lib.Name, Version: lib.Version}
		d.Form = CatalogForm
	default:
		return d, unsupported(e.line, block, e.text, "expected a coordinate string or group, name and version arguments")
	}

	if !d.Coordinate.complete() {
		return d, malformed(e.line, block, e.text, "coordinate %q is missing a group, artifact or version", d.Coordinate.String())
	}
	return d, nil
}

func namedCoordinate(args string, e *event, block string) (Coordinate, error) {
	c := Coordinate{}
	seen := map[string]bool{}
	for _, kv := range reNamedArg.FindAllStringSubmatch(args, -1) {
		key, val := kv[1], unquote(kv[2])
		if seen[key] {
			return c, malformed(e.line, block, e.text, "argument %s given twice", key)
		}
		seen[key] = true
		if strings.Contains(val, "$") {
			return c, unsupported(e.line, block, e.text, "string templates are not supported")
		}
		switch key {
		case "group":
			c.Group = strings.TrimSpace(val)
		case "name":
			c.Artifact = strings.TrimSpace(val)
		case "version":
			c.Version = strings.TrimSpace(val)
		default:
			return c, unsupported(e.line, block, e.text, "unsupported argument %s", key)
		}
	}
	return c, nil
}

func isTaskHeader(h string) bool {
	return h == "test" || strings.HasPrefix(h, "tasks.")
}

func taskName(h string) string {
	if q := firstQuoted(h); q != "" {
		return q
	}
	return strings.TrimPrefix(h, "tasks.")
}

func firstQuoted(s string) string {
	return unquote(reQuoted.FindString(s))
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
