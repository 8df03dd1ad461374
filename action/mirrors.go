package action

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/gradlefile/mirrors"
	"github.com/Masterminds/gradlefile/msg"
)

// readMirrors loads the mirrors file from the home directory. A missing
// file gives an empty set and false.
func readMirrors() (*mirrors.Mirrors, bool) {
	op := mirrors.Path()
	if _, err := os.Stat(op); os.IsNotExist(err) {
		return &mirrors.Mirrors{Repos: mirrors.MirrorRepos{}}, false
	}
	ov, err := mirrors.ReadMirrorsFile(op)
	if err != nil {
		msg.Die("Unable to read %s: %s", op, err)
	}
	return ov, true
}

func writeMirrors(ov *mirrors.Mirrors) {
	op := mirrors.Path()
	if err := os.MkdirAll(filepath.Dir(op), 0755); err != nil {
		msg.Die("Could not create %s: %s", filepath.Dir(op), err)
	}
	if err := ov.WriteFile(op); err != nil {
		msg.Err("Error writing %s: %s", op, err)
		return
	}
	msg.Info("%s written with changes", mirrors.File)
}

// MirrorsList displays the repository mirrors in the home directory.
func MirrorsList() error {
	ov, found := readMirrors()
	if !found {
		msg.Info("No mirrors exist. No %s file found in %s", mirrors.File, filepath.Dir(mirrors.Path()))
		return nil
	}
	if len(ov.Repos) == 0 {
		msg.Info("No mirrors found")
		return nil
	}

	msg.Info("Mirrors...")
	for _, r := range ov.Repos {
		msg.Info("--> %s replaced by %s", r.Original, r.URL)
	}
	return nil
}

// MirrorsSet makes url stand in for the repository o, which is named the
// way the build script names it (mavenCentral, google, or a URL).
func MirrorsSet(o, url string) error {
	if o == "" || url == "" {
		msg.Err("Both the original repository and the mirror URL are required")
		return nil
	}

	ov, found := readMirrors()
	if !found {
		msg.Info("No %s file exists. Creating new one", mirrors.File)
	}
	if ov.Set(o, url) {
		msg.Info("%s found in mirrors. Replacing with new settings", o)
	}
	msg.Info("%s being set to %s", o, url)

	writeMirrors(ov)
	return nil
}

// MirrorsRemove removes the mirror for repository k.
func MirrorsRemove(k string) error {
	if k == "" {
		msg.Err("The mirror to remove is required")
		return nil
	}

	ov, found := readMirrors()
	if !found {
		msg.Err("%s file not found", mirrors.File)
		return nil
	}
	if !ov.Remove(k) {
		msg.Warn("%s was not found in mirrors", k)
		return nil
	}
	msg.Info("%s was removed from mirrors", k)

	writeMirrors(ov)
	return nil
}
