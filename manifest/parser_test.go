package manifest

import (
	"errors"
	"os"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/Masterminds/gradlefile/catalog"
	"github.com/kr/pretty"
)

const exampleScript = `
dependencies {
    implementation("a:b:1.0")
    implementation("c:d:2.0") // ignore
    implementation(group: "e", name: "f", version: "3.0")
}
`

func mustParse(t *testing.T, text string) *Manifest {
	t.Helper()
	m, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	return m
}

func TestParseExample(t *testing.T) {
	m := mustParse(t, exampleScript)

	ignored := slices.Collect(m.DependenciesWithAnnotation("ignore"))
	if len(ignored) != 1 {
		t.Fatalf("Expected 1 ignored dependency, got %d", len(ignored))
	}
	if c := ignored[0].Coordinate; c != (Coordinate{"c", "d", "2.0"}) {
		t.Errorf("Expected c:d:2.0 to be ignored, got %s", c)
	}

	expected := []Coordinate{{"a", "b", "1.0"}, {"c", "d", "2.0"}, {"e", "f", "3.0"}}
	got := slices.Collect(m.AllCoordinates())
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("Unexpected coordinates: %s", pretty.Diff(expected, got))
	}
}

func TestParseFixture(t *testing.T) {
	b, err := os.ReadFile("../testdata/quarkus/build.gradle.kts")
	if err != nil {
		t.Fatalf("Unable to read fixture: %s", err)
	}
	m := mustParse(t, string(b))

	if m.Group() != "org.acme.dbaas" {
		t.Errorf("Expected group org.acme.dbaas, got %q", m.Group())
	}
	if m.Version() != "1.0.0-SNAPSHOT" {
		t.Errorf("Expected version 1.0.0-SNAPSHOT, got %q", m.Version())
	}
	if p := m.Plugins(); !reflect.DeepEqual(p, []Plugin{{ID: "java"}}) {
		t.Errorf("Unexpected plugins %# v", pretty.Formatter(p))
	}
	if r := m.Repositories(); !reflect.DeepEqual(r, []string{"mavenCentral"}) {
		t.Errorf("Unexpected repositories %v", r)
	}
	tasks := m.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "test" || !reflect.DeepEqual(tasks[0].Statements, []string{"useJUnitPlatform()"}) {
		t.Errorf("Unexpected tasks %# v", pretty.Formatter(tasks))
	}

	if m.Len() != 13 {
		t.Errorf("Expected 13 dependencies, got %d", m.Len())
	}

	ignored := slices.Collect(m.DependenciesWithAnnotation("exhortignore"))
	if len(ignored) != 1 {
		t.Fatalf("Expected 1 ignored dependency, got %d", len(ignored))
	}
	d := ignored[0]
	if d.Coordinate.String() != "log4j:log4j:1.2.17" {
		t.Errorf("Expected log4j to be ignored, got %s", d.Coordinate)
	}
	if d.Form != NamedForm {
		t.Errorf("Expected the named form, got %s", d.Form)
	}
	if d.Line != 24 {
		t.Errorf("Expected line 24, got %d", d.Line)
	}
	if d.Configuration != Implementation {
		t.Errorf("Expected implementation, got %s", d.Configuration)
	}
}

func TestDeclarationFormsAgree(t *testing.T) {
	forms := []string{
		`implementation("g:a:1.0")`,
		`implementation(group: "g", name: "a", version: "1.0")`,
		`implementation(group = "g", name = "a", version = "1.0")`,
		`implementation(version = "1.0", name = "a", group = "g")`,
		`implementation 'g:a:1.0'`,
		`implementation group: 'g', name: 'a', version: '1.0'`,
	}
	for _, f := range forms {
		m, err := Parse("dependencies {\n" + f + "\n}\n")
		if err != nil {
			t.Errorf("Parse of %s failed: %s", f, err)
			continue
		}
		got := slices.Collect(m.AllCoordinates())
		if len(got) != 1 || got[0] != (Coordinate{"g", "a", "1.0"}) {
			t.Errorf("%s gave %v", f, got)
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	lines := []string{
		`implementation("a:a:1")`,
		`api("b:b:2")`,
		`testImplementation(group: "c", name: "c", version: "3")`,
	}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		var b strings.Builder
		b.WriteString("dependencies {\n")
		for _, i := range p {
			b.WriteString(lines[i] + "\n")
		}
		b.WriteString("}\n")

		m := mustParse(t, b.String())
		var got []string
		for c := range m.AllCoordinates() {
			got = append(got, c.Group)
		}
		var expected []string
		for _, i := range p {
			expected = append(expected, string(rune('a'+i)))
		}
		if !reflect.DeepEqual(expected, got) {
			t.Errorf("Order %v: expected %v, got %v", p, expected, got)
		}
	}
}

func TestAnnotationScoping(t *testing.T) {
	m := mustParse(t, `
dependencies {
    // ignore
    implementation("a:a:1")
    implementation("b:b:1") // ignore
    implementation("c:c:1")
    /* ignore */
    implementation("d:d:1") /* IGNORE this one */
    implementation("e:e:1"); implementation("f:f:1") // Ignore
}
`)
	var got []string
	for d := range m.DependenciesWithAnnotation("ignore") {
		got = append(got, d.Coordinate.Group)
	}
	if !reflect.DeepEqual(got, []string{"b", "d", "f"}) {
		t.Errorf("Expected b, d and f to carry the marker, got %v", got)
	}

	for _, d := range m.Dependencies() {
		if d.Coordinate.Group == "d" {
			if !reflect.DeepEqual(d.Annotations, []string{"ignore", "this", "one"}) {
				t.Errorf("Unexpected annotations %v", d.Annotations)
			}
		}
	}

	if n := len(slices.Collect(m.DependenciesWithAnnotation("exhortignore"))); n != 0 {
		t.Errorf("Markers must match whole words, got %d matches", n)
	}
	if n := len(slices.Collect(m.DependenciesWithAnnotation(""))); n != 0 {
		t.Errorf("An empty marker must match nothing, got %d matches", n)
	}
}

func TestSequencesRestartable(t *testing.T) {
	m := mustParse(t, exampleScript)
	seq := m.AllCoordinates()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Second iteration differs: %s", pretty.Diff(first, second))
	}

	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Expected to stop after 2, got %d", n)
	}
}

func TestManifestCannotBeModified(t *testing.T) {
	m := mustParse(t, exampleScript)
	deps := m.Dependencies()
	deps[1].Annotations[0] = "changed"
	deps[0].Coordinate.Version = "9.9"
	for d := range m.All() {
		d.Annotations = append(d.Annotations, "more")
	}

	if n := len(slices.Collect(m.DependenciesWithAnnotation("ignore"))); n != 1 {
		t.Errorf("Annotations were modified through a copy")
	}
	if v := m.Dependencies()[0].Coordinate.Version; v != "1.0" {
		t.Errorf("Coordinate was modified through a copy: %s", v)
	}
}

func TestMultilineAndClosures(t *testing.T) {
	m := mustParse(t, `
dependencies {
    implementation(
        "a:a:1" // ignore
    )
    implementation("b:b:2") {
        exclude(group = "x", module = "y")
    }
    testImplementation("c:c:3") { because("tests") } // ignore
}
`)
	got := slices.Collect(m.AllCoordinates())
	expected := []Coordinate{{"a", "a", "1"}, {"b", "b", "2"}, {"c", "c", "3"}}
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("Unexpected coordinates: %s", pretty.Diff(expected, got))
	}
	deps := m.Dependencies()
	if deps[0].Line != 3 || !deps[0].HasAnnotation("ignore") {
		t.Errorf("Multi-line declaration should start on line 3 and carry its comment: %# v", pretty.Formatter(deps[0]))
	}
	if deps[1].HasAnnotation("ignore") {
		t.Errorf("Annotation leaked into b:b:2")
	}
	if !deps[2].HasAnnotation("ignore") {
		t.Errorf("Comment after a one-line closure was lost: %# v", pretty.Formatter(deps[2]))
	}
}

func TestClosureCommentScoping(t *testing.T) {
	m := mustParse(t, `
dependencies {
    implementation("a:b:1") { because("x") } // ignore
    implementation("c:d:2") {
        because("y")
    } // ignore
    implementation("e:f:3") { // ignore
    }
}
`)
	ignored := slices.Collect(m.DependenciesWithAnnotation("ignore"))
	if len(ignored) != 2 {
		t.Fatalf("Expected 2 annotated dependencies, got %# v", pretty.Formatter(ignored))
	}
	if ignored[0].Coordinate.Artifact != "b" || ignored[0].Line != 3 {
		t.Errorf("Expected a:b:1 on line 3, got %s on line %d", ignored[0].Coordinate, ignored[0].Line)
	}
	if ignored[1].Coordinate.Artifact != "f" {
		t.Errorf("Expected e:f:3, got %s", ignored[1].Coordinate)
	}
}

func TestByteOrderMark(t *testing.T) {
	m := mustParse(t, "\ufeffplugins {\n    id(\"java\")\n}\ndependencies {\n    implementation(\"a:b:1\")\n}\n")
	if p := m.Plugins(); len(p) != 1 || p[0].ID != "java" {
		t.Errorf("Plugins lost after a byte order mark: %v", p)
	}
	if d := m.Dependencies(); len(d) != 1 || d[0].Line != 5 {
		t.Errorf("Unexpected dependencies %v", d)
	}
}

func TestGroovyScript(t *testing.T) {
	m := mustParse(t, `
plugins {
    id 'java'
    id 'org.springframework.boot' version '3.1.0'
}

apply plugin: 'maven-publish'

group 'com.example'
version '1.2.3'

repositories {
    mavenCentral()
    maven { url 'https://jitpack.io' }
}

dependencies
{
    implementation 'org.slf4j:slf4j-api:2.0.7'
    testImplementation group: 'junit', name: 'junit', version: '4.13.2' // exhortignore
}

test {
    useJUnitPlatform()
}
`)
	if m.Group() != "com.example" || m.Version() != "1.2.3" {
		t.Errorf("Unexpected group/version %q %q", m.Group(), m.Version())
	}
	expected := []Plugin{
		{ID: "java"},
		{ID: "org.springframework.boot", Version: "3.1.0"},
		{ID: "maven-publish"},
	}
	if p := m.Plugins(); !reflect.DeepEqual(expected, p) {
		t.Errorf("Unexpected plugins: %s", pretty.Diff(expected, p))
	}
	if r := m.Repositories(); !reflect.DeepEqual(r, []string{"mavenCentral", "https://jitpack.io"}) {
		t.Errorf("Unexpected repositories %v", r)
	}
	if m.Len() != 2 {
		t.Fatalf("Expected 2 dependencies, got %d", m.Len())
	}
	ignored := slices.Collect(m.DependenciesWithAnnotation("exhortignore"))
	if len(ignored) != 1 || ignored[0].Coordinate.String() != "junit:junit:4.13.2" {
		t.Fatalf("Unexpected ignored dependencies %v", ignored)
	}
	if ignored[0].Configuration != TestImplementation || !ignored[0].Configuration.IsTest() {
		t.Errorf("Unexpected configuration %s", ignored[0].Configuration)
	}
}

func TestKotlinPluginsAndRepositories(t *testing.T) {
	m := mustParse(t, `
plugins {
    kotlin("jvm") version "1.9.0"
    `+"`java-library`"+`
    application
    id("com.github.ben-manes.versions") version "0.47.0" apply false
}

repositories {
    google()
    mavenCentral()
    maven("https://repo.example.com/a")
    maven(url = "https://repo.example.com/b")
    maven {
        name = "internal"
        url = uri("https://repo.example.com/c")
        credentials {
            username = "x"
        }
    }
    mavenCentral()
}

dependencies {
}
`)
	expected := []Plugin{
		{ID: "org.jetbrains.kotlin.jvm", Version: "1.9.0"},
		{ID: "java-library"},
		{ID: "application"},
		{ID: "com.github.ben-manes.versions", Version: "0.47.0"},
	}
	if p := m.Plugins(); !reflect.DeepEqual(expected, p) {
		t.Errorf("Unexpected plugins: %s", pretty.Diff(expected, p))
	}
	repos := []string{"google", "mavenCentral", "https://repo.example.com/a", "https://repo.example.com/b", "https://repo.example.com/c"}
	if r := m.Repositories(); !reflect.DeepEqual(repos, r) {
		t.Errorf("Unexpected repositories: %s", pretty.Diff(repos, r))
	}
	if m.Len() != 0 {
		t.Errorf("Expected no dependencies, got %d", m.Len())
	}
}

func TestSkipsUnknownBlocks(t *testing.T) {
	m := mustParse(t, `
buildscript {
    dependencies {
        classpath("com.android.tools.build:gradle:8.0.0")
    }
}

java {
    toolchain {
        languageVersion.set(JavaLanguageVersion.of(17))
    }
}

description = "skipped"
val kotlinVersion = "1.9.0"

dependencies {
    implementation("a:a:1")
}
`)
	if m.Len() != 1 {
		t.Errorf("Expected only the top level dependencies block, got %d dependencies", m.Len())
	}
}

func TestMalformed(t *testing.T) {
	cases := map[string]string{
		"missing version":      "dependencies {\n implementation(\"a:b\")\n}\n",
		"too many segments":    "dependencies {\n implementation(\"a:b:c:d\")\n}\n",
		"empty segment":        "dependencies {\n implementation(\"a::1\")\n}\n",
		"missing named arg":    "dependencies {\n implementation(group: \"a\", name: \"b\")\n}\n",
		"empty named arg":      "dependencies {\n implementation(group: \"a\", name: \"\", version: \"1\")\n}\n",
		"repeated named arg":   "dependencies {\n implementation(group: \"a\", group: \"b\", name: \"c\", version: \"1\")\n}\n",
		"no dependencies":      "plugins {\n java\n}\n",
		"unclosed block":       "dependencies {\n implementation(\"a:b:1\")\n",
		"stray brace":          "dependencies {\n}\n}\n",
		"unterminated string":  "dependencies {\n implementation(\"a:b:1)\n}\n",
		"unterminated paren":   "dependencies {\n implementation(\"a:b:1\"\n}\n",
		"unterminated comment": "dependencies {\n}\n/* never ends\n",
		"bad plugin":           "plugins {\n alias(libs.plugins.x)\n}\ndependencies {\n}\n",
	}
	for name, text := range cases {
		m, err := Parse(text)
		if !errors.Is(err, ErrMalformedManifest) {
			t.Errorf("%s: expected ErrMalformedManifest, got %v", name, err)
		}
		if m != nil {
			t.Errorf("%s: a partial manifest was returned", name)
		}
	}
}

func TestUnsupportedDeclarationForm(t *testing.T) {
	cases := []string{
		`implementation(project(":core"))`,
		`implementation(platform("io.quarkus:quarkus-bom:2.13.5.Final"))`,
		`implementation(files("libs/a.jar"))`,
		`implementation(libs.quarkus.agroal)`,
		`implementation("io.quarkus:quarkus-agroal:$quarkusVersion")`,
		`implementation(group: "a", name: "b", version: "1", classifier: "jdk8")`,
		`testImplementation(kotlin("test"))`,
		`val x = 1`,
		`constraints { }`,
	}
	for _, c := range cases {
		m, err := Parse("dependencies {\n" + c + "\n}\n")
		if !errors.Is(err, ErrUnsupportedDeclarationForm) {
			t.Errorf("%s: expected ErrUnsupportedDeclarationForm, got %v", c, err)
		}
		if m != nil {
			t.Errorf("%s: a partial manifest was returned", c)
		}
	}
}

func TestParseErrorIdentifiesDeclaration(t *testing.T) {
	_, err := Parse(`
dependencies {
    implementation("a:b:1")
    implementation("c:d")
}
`)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected a *ParseError, got %v", err)
	}
	if pe.Line != 4 {
		t.Errorf("Expected line 4, got %d", pe.Line)
	}
	if pe.Block != "dependencies" {
		t.Errorf("Expected the dependencies block, got %q", pe.Block)
	}
	if pe.Text != `implementation("c:d")` {
		t.Errorf("Unexpected text %q", pe.Text)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("Error message should name the line: %s", err)
	}
}

func TestCatalogReferences(t *testing.T) {
	c, err := catalog.Parse([]byte(`
[versions]
quarkus = "2.13.5.Final"

[libraries]
quarkus-agroal = { module = "io.quarkus:quarkus-agroal", version.ref = "quarkus" }
`))
	if err != nil {
		t.Fatalf("Unable to parse catalog: %s", err)
	}
	p := &Parser{Catalog: c}

	m, err := p.Parse("dependencies {\n implementation(libs.quarkus.agroal) // exhortignore\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	d := m.Dependencies()[0]
	if d.Coordinate.String() != "io.quarkus:quarkus-agroal:2.13.5.Final" {
		t.Errorf("Unexpected coordinate %s", d.Coordinate)
	}
	if d.Form != CatalogForm || !d.HasAnnotation("exhortignore") {
		t.Errorf("Unexpected dependency %# v", pretty.Formatter(d))
	}

	_, err = p.Parse("dependencies {\n implementation(libs.missing)\n}\n")
	if !errors.Is(err, ErrMalformedManifest) {
		t.Errorf("Expected an unknown alias to be malformed, got %v", err)
	}
}
