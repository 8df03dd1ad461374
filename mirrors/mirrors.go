// Package mirrors handles repository mirrors configured in the gradlefile
// home directory.
package mirrors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"
)

// File is the name of the mirrors file in the gradlefile home directory.
const File = "mirrors.yaml"

var mirrors map[string]string

func init() {
	mirrors = make(map[string]string)
}

// Path returns the location of the mirrors file.
func Path() string {
	return filepath.Join(gpath.Home(), File)
}

// Get retrieves the mirror for a repository. It returns whether one was
// found and the URL to use instead.
func Get(k string) (bool, string) {
	u, f := mirrors[k]
	return f, u
}

// Apply returns repos with every mirrored repository replaced.
func Apply(repos []string) []string {
	n := make([]string, len(repos))
	for i, r := range repos {
		if f, u := Get(r); f {
			n[i] = u
		} else {
			n[i] = r
		}
	}
	return n
}

// Load pulls the mirrors into memory, replacing any loaded before.
func Load() error {
	mirrors = make(map[string]string)

	op := Path()
	if _, err := os.Stat(op); os.IsNotExist(err) {
		msg.Debug("No %s file exists", File)
		return nil
	} else if err != nil {
		return err
	}

	ov, err := ReadMirrorsFile(op)
	if err != nil {
		return fmt.Errorf("Error reading existing %s file: %s", File, err)
	}

	msg.Debug("Loading mirrors from %s", op)
	for _, o := range ov.Repos {
		msg.Debug("Found mirror: %s to %s", o.Original, o.URL)
		mirrors[o.Original] = o.URL
	}

	return nil
}
