package action

import (
	"github.com/Masterminds/gradlefile/manifest"
	"github.com/Masterminds/gradlefile/msg"
	"github.com/Masterminds/semver"
)

// List lists the dependencies of the current project in declaration order.
//
// Params:
//   - configuration (string): only list this configuration, if set
//   - constraint (string): a semantic version constraint versions must meet
//   - purl (bool): print package URLs instead of coordinates
//
// Versions that are not semantic versions never meet a constraint.
func List(configuration, constraint string, purl bool) {
	conf := EnsureConfig()
	m, _, _ := EnsureManifest(conf)

	var c *semver.Constraints
	if constraint != "" {
		var err error
		c, err = semver.NewConstraint(constraint)
		if err != nil {
			msg.Die("Invalid version constraint %q: %s", constraint, err)
		}
	}

	for d := range m.Filter(func(d manifest.Dependency) bool {
		if configuration != "" && string(d.Configuration) != configuration {
			return false
		}
		if c == nil {
			return true
		}
		v, err := d.Coordinate.Semver()
		if err != nil {
			msg.Debug("Skipping %s: %s", d.Coordinate, err)
			return false
		}
		return c.Check(v)
	}) {
		if purl {
			msg.Puts("%s", d.Coordinate.PackageURL())
			continue
		}
		msg.Puts("%s\t%s", d.Configuration, d.Coordinate)
	}
}
