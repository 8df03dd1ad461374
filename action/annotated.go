package action

import (
	"github.com/Masterminds/gradlefile/msg"
)

// Annotated prints the dependencies whose declaration line carries marker.
// An empty marker means the one from the settings file.
func Annotated(marker string) {
	conf := EnsureConfig()
	if marker == "" {
		marker = conf.Marker
	}
	m, _, _ := EnsureManifest(conf)

	n := 0
	for d := range m.DependenciesWithAnnotation(marker) {
		msg.Puts("%s\t%s\t(line %d)", d.Configuration, d.Coordinate, d.Line)
		n++
	}
	msg.Debug("%d of %d dependencies are annotated with %q", n, m.Len(), marker)
}
