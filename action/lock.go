package action

import (
	"github.com/Masterminds/gradlefile/manifest"
	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"
)

// Lock writes a lock snapshot of the build script's dependencies.
//
// The snapshot goes to output, or next to the build script when output is
// empty.
func Lock(output string) {
	conf := EnsureConfig()
	m, p, text := EnsureManifest(conf)

	if output == "" {
		output = gpath.Lock(p)
	}

	lf := manifest.NewLockfile(m, manifest.Hash(text))
	if err := lf.WriteFile(output); err != nil {
		msg.Die("Could not write lock file to %s: %s", output, err)
	}
	msg.Info("Locked %d dependencies in %s", len(lf.Dependencies), gpath.StripBasepath(output))
}
