package action

import (
	"github.com/Masterminds/gradlefile/tree"
)

// Tree prints the dependencies grouped by configuration, flagging the ones
// annotated with the configured marker.
func Tree() {
	conf := EnsureConfig()
	m, _, _ := EnsureManifest(conf)
	tree.Display(m, conf.Marker)
}
