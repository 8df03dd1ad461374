package action

import (
	"os"

	"github.com/Masterminds/gradlefile/manifest"
	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"
)

// Verify checks the build script against its lock snapshot.
//
// A script whose text is unchanged is up to date. A script that changed
// without changing its dependencies is reported but still passes. Anything
// else stops the program.
func Verify(lockpath string) {
	conf := EnsureConfig()
	m, p, text := EnsureManifest(conf)

	if lockpath == "" {
		lockpath = gpath.Lock(p)
	}
	yml, err := os.ReadFile(lockpath)
	if err != nil {
		msg.Die("Could not read lock file %s: %s", lockpath, err)
	}
	locked, err := manifest.LockfileFromYaml(yml)
	if err != nil {
		msg.Die("Could not parse lock file %s: %s", lockpath, err)
	}

	name := gpath.StripBasepath(p)
	if locked.Hash == manifest.Hash(text) {
		msg.Info("%s is up to date", name)
		return
	}

	current := manifest.NewLockfile(m, "")
	f1, err := locked.Fingerprint()
	if err != nil {
		msg.Die("Could not fingerprint %s: %s", lockpath, err)
	}
	f2, err := current.Fingerprint()
	if err != nil {
		msg.Die("Could not fingerprint %s: %s", name, err)
	}
	if f1 == f2 {
		msg.Info("%s changed but its dependencies did not", name)
		return
	}

	msg.Die("%s does not match %s, run lock to update it", name, gpath.StripBasepath(lockpath))
}
