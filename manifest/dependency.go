package manifest

import (
	"strings"
	"unicode"

	"github.com/Masterminds/semver"
	"github.com/package-url/packageurl-go"
)

// Configuration is the Gradle configuration a dependency is declared in.
type Configuration string

// Configurations commonly found in Gradle builds. Others are accepted by
// Parse; Known reports whether a value is one of these.
const (
	Implementation          Configuration = "implementation"
	API                     Configuration = "api"
	CompileOnly             Configuration = "compileOnly"
	RuntimeOnly             Configuration = "runtimeOnly"
	TestImplementation      Configuration = "testImplementation"
	TestCompileOnly         Configuration = "testCompileOnly"
	TestRuntimeOnly         Configuration = "testRuntimeOnly"
	AnnotationProcessor     Configuration = "annotationProcessor"
	Kapt                    Configuration = "kapt"
	DevelopmentOnly         Configuration = "developmentOnly"
	LegacyCompile           Configuration = "compile"
	LegacyTestCompile       Configuration = "testCompile"
	LegacyRuntime           Configuration = "runtime"
	LegacyTestRuntime       Configuration = "testRuntime"
	TestAnnotationProcessor Configuration = "testAnnotationProcessor"
)

var knownConfigurations = map[Configuration]bool{
	Implementation:          true,
	API:                     true,
	CompileOnly:             true,
	RuntimeOnly:             true,
	TestImplementation:      true,
	TestCompileOnly:         true,
	TestRuntimeOnly:         true,
	AnnotationProcessor:     true,
	Kapt:                    true,
	DevelopmentOnly:         true,
	LegacyCompile:           true,
	LegacyTestCompile:       true,
	LegacyRuntime:           true,
	LegacyTestRuntime:       true,
	TestAnnotationProcessor: true,
}

// Known reports whether c is one of the standard configurations.
func (c Configuration) Known() bool {
	return knownConfigurations[c]
}

// IsTest reports whether c only applies to the test source set.
func (c Configuration) IsTest() bool {
	return strings.HasPrefix(string(c), "test")
}

// DeclarationForm records which syntax a dependency was declared with.
type DeclarationForm string

const (
	// StringForm is a single "group:artifact:version" string.
	StringForm DeclarationForm = "string"
	// NamedForm is group, name and version passed as named arguments.
	NamedForm DeclarationForm = "named"
	// CatalogForm is a libs.* reference resolved through a version catalog.
	CatalogForm DeclarationForm = "catalog"
)

// Coordinate is the group, artifact and version of a dependency.
type Coordinate struct {
	Group    string `yaml:"group" json:"group"`
	Artifact string `yaml:"artifact" json:"artifact"`
	Version  string `yaml:"version" json:"version"`
}

// String returns the coordinate in group:artifact:version notation.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// Name returns group:artifact, the coordinate without its version.
func (c Coordinate) Name() string {
	return c.Group + ":" + c.Artifact
}

// PackageURL returns the Maven package URL for the coordinate, e.g.
// pkg:maven/log4j/log4j@1.2.17.
func (c Coordinate) PackageURL() string {
	p := packageurl.NewPackageURL(packageurl.TypeMaven, c.Group, c.Artifact, c.Version, nil, "")
	return p.ToString()
}

// Semver parses the version as a semantic version. Versions such as
// 2.13.5.Final are not semantic versions and return an error.
func (c Coordinate) Semver() (*semver.Version, error) {
	return semver.NewVersion(c.Version)
}

func (c Coordinate) complete() bool {
	return c.Group != "" && c.Artifact != "" && c.Version != ""
}

// Dependency is a single declaration from the dependencies block.
type Dependency struct {
	Configuration Configuration   `yaml:"configuration" json:"configuration"`
	Coordinate    Coordinate      `yaml:"coordinate" json:"coordinate"`
	Form          DeclarationForm `yaml:"form" json:"form"`
	Annotations   []string        `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Line          int             `yaml:"line" json:"line"`
}

// HasAnnotation reports whether the declaration line carries marker. The
// comparison ignores case.
func (d Dependency) HasAnnotation(marker string) bool {
	marker = normalizeMarker(marker)
	if marker == "" {
		return false
	}
	for _, a := range d.Annotations {
		if a == marker {
			return true
		}
	}
	return false
}

// Clone returns a copy of d that shares no memory with it.
func (d Dependency) Clone() Dependency {
	n := d
	if d.Annotations != nil {
		n.Annotations = append([]string(nil), d.Annotations...)
	}
	return n
}

// Plugin is an entry of the plugins block.
type Plugin struct {
	ID      string `yaml:"id" json:"id"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Task is a task configuration block such as tasks.test { ... }. Statements
// holds the block's top level statements verbatim.
type Task struct {
	Name       string   `yaml:"name" json:"name"`
	Statements []string `yaml:"statements,omitempty" json:"statements,omitempty"`
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	n := t
	if t.Statements != nil {
		n.Statements = append([]string(nil), t.Statements...)
	}
	return n
}

func normalizeMarker(m string) string {
	return strings.ToLower(strings.TrimSpace(m))
}

// annotationTokens splits comment text into lowercased words, dropping
// repeats and keeping first-seen order.
func annotationTokens(comments []string, into []string) []string {
	for _, c := range comments {
		words := strings.FieldsFunc(c, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.'
		})
		for _, w := range words {
			w = strings.ToLower(strings.Trim(w, "."))
			if w == "" || stringsContain(into, w) {
				continue
			}
			into = append(into, w)
		}
	}
	return into
}

func stringsContain(v []string, key string) bool {
	for _, s := range v {
		if s == key {
			return true
		}
	}
	return false
}
