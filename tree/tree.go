/*
Package tree contains functions for printing the dependencies of a build
script as a tree.

The first level of the tree is the configuration, in the order each
configuration first appears in the build script. Under it are the
dependencies declared in that configuration, in declaration order.
Test-only configurations and dependencies carrying the marker annotation
are flagged.
*/
package tree

import (
	"github.com/Masterminds/gradlefile/manifest"
	"github.com/Masterminds/gradlefile/msg"
)

// Branch is one configuration and the dependencies declared in it.
type Branch struct {
	Configuration manifest.Configuration
	Dependencies  []manifest.Dependency
}

// Build groups the dependencies of m by configuration.
func Build(m *manifest.Manifest) []Branch {
	index := map[manifest.Configuration]int{}
	branches := []Branch{}
	for d := range m.All() {
		i, ok := index[d.Configuration]
		if !ok {
			i = len(branches)
			index[d.Configuration] = i
			branches = append(branches, Branch{Configuration: d.Configuration})
		}
		branches[i].Dependencies = append(branches[i].Dependencies, d)
	}
	return branches
}

// Display displays a tree view of the given build script. Dependencies
// annotated with marker are followed by the marker in parentheses.
func Display(m *manifest.Manifest, marker string) {
	for _, b := range Build(m) {
		name := string(b.Configuration)
		switch {
		case !b.Configuration.Known():
			name += "   (unknown configuration)"
		case b.Configuration.IsTest():
			name += "   (test)"
		}
		msg.Puts("%s", name)
		for _, d := range b.Dependencies {
			msg.Print("|-- ")
			if marker != "" && d.HasAnnotation(marker) {
				msg.Puts("%s   (%s)", d.Coordinate, marker)
			} else {
				msg.Puts("%s", d.Coordinate)
			}
		}
	}
}
