package manifest

import "iter"

// Manifest is the parsed form of a Gradle build script.
//
// A Manifest is only produced by Parse and never changes afterwards. Every
// accessor returns copies, so callers cannot alter a shared Manifest.
type Manifest struct {
	group        string
	version      string
	plugins      []Plugin
	repositories []string
	dependencies []Dependency
	tasks        []Task
}

// Group returns the project group, or "" when the script does not set one.
func (m *Manifest) Group() string {
	return m.group
}

// Version returns the project version, or "" when the script does not set one.
func (m *Manifest) Version() string {
	return m.version
}

// Plugins returns the plugins in declaration order.
func (m *Manifest) Plugins() []Plugin {
	return append([]Plugin(nil), m.plugins...)
}

// Repositories returns repository names (mavenCentral) and URLs, without
// repeats, in the order they first appear.
func (m *Manifest) Repositories() []string {
	return append([]string(nil), m.repositories...)
}

// Tasks returns the configured task blocks in declaration order.
func (m *Manifest) Tasks() []Task {
	n := make([]Task, len(m.tasks))
	for i, t := range m.tasks {
		n[i] = t.Clone()
	}
	return n
}

// Dependencies returns every dependency in declaration order.
func (m *Manifest) Dependencies() []Dependency {
	n := make([]Dependency, len(m.dependencies))
	for i, d := range m.dependencies {
		n[i] = d.Clone()
	}
	return n
}

// Len returns the number of dependencies.
func (m *Manifest) Len() int {
	return len(m.dependencies)
}

// All iterates over every dependency in declaration order.
func (m *Manifest) All() iter.Seq[Dependency] {
	return m.Filter(func(Dependency) bool { return true })
}

// Filter iterates, in declaration order, over the dependencies for which
// keep returns true. The sequence may be ranged over any number of times.
func (m *Manifest) Filter(keep func(Dependency) bool) iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, d := range m.dependencies {
			if !keep(d) {
				continue
			}
			if !yield(d.Clone()) {
				return
			}
		}
	}
}

// DependenciesWithAnnotation iterates, in declaration order, over the
// dependencies whose declaration line carries marker. Markers are compared
// without regard to case, so "ignore" matches a "// IGNORE" comment.
func (m *Manifest) DependenciesWithAnnotation(marker string) iter.Seq[Dependency] {
	marker = normalizeMarker(marker)
	return m.Filter(func(d Dependency) bool {
		return d.HasAnnotation(marker)
	})
}

// AllCoordinates iterates over the coordinate of every dependency in
// declaration order. Coordinates from string and named-argument declarations
// are indistinguishable.
func (m *Manifest) AllCoordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range m.dependencies {
			if !yield(d.Coordinate) {
				return
			}
		}
	}
}
