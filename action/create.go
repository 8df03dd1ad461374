package action

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/gradlefile/cfg"
	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"
)

// Create writes a .gradlefile.yaml next to the build script.
//
// This will fail if the settings file already exists. The file records the
// marker and duplicate policy in effect, and the version catalog when the
// project has one.
func Create(marker string) {
	conf := EnsureConfig()
	p := EnsureManifestPath(conf)
	target := filepath.Join(filepath.Dir(p), gpath.ConfigFile)
	guardSettings(target)

	n := cfg.Default()
	if marker != "" {
		n.Marker = marker
	} else {
		n.Marker = conf.Marker
	}
	n.Duplicates = conf.Duplicates
	if c := gpath.Catalog(p); c != "" {
		if rel, err := filepath.Rel(filepath.Dir(p), c); err == nil {
			n.Catalog = rel
		}
	}

	msg.Info("Writing settings file %s", gpath.StripBasepath(target))
	if err := n.WriteFile(target); err != nil {
		msg.Die("Could not save %s: %s", target, err)
	}
}

// guardSettings fails if the given file exists.
//
// This prevents an accidental overwrite of existing settings.
func guardSettings(filename string) {
	if _, err := os.Stat(filename); err == nil {
		msg.Die("Cowardly refusing to overwrite existing settings in %s.", filename)
	}
}
