package action

import (
	"github.com/Masterminds/gradlefile/msg"
)

// Catalog prints the libraries of the project's version catalog, sorted by
// alias, with the accessor a build script uses for each.
func Catalog() {
	conf := EnsureConfig()
	p := EnsureManifestPath(conf)
	c := EnsureCatalog(conf, p)
	if c == nil {
		msg.Die("No version catalog found for %s", p)
	}

	for _, l := range c.Libraries() {
		coord := l.Group + ":" + l.Name
		if l.Version != "" {
			coord += ":" + l.Version
		}
		msg.Puts("%s\t%s", l.Reference(), coord)
	}
}
