package action

import (
	"os"

	"github.com/Masterminds/gradlefile/catalog"
	"github.com/Masterminds/gradlefile/cfg"
	"github.com/Masterminds/gradlefile/manifest"
	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"
)

// EnsureConfig loads the settings that apply to the current project, with
// command line overrides applied.
//
// Any error will cause an immediate exit, with an error printed to Stderr.
func EnsureConfig() *cfg.Config {
	p := configFile
	if p == "" {
		m, err := gpath.Manifest()
		if err != nil {
			msg.Debug("No build script found while looking for settings: %s", err)
		}
		p = gpath.Config(m)
	}

	conf, err := cfg.Load(p)
	if err != nil {
		msg.Die("Failed to load settings from %s: %s", p, err)
	}
	if p != "" {
		msg.Debug("Using settings from %s", p)
	}

	if catalogFile != "" {
		conf.Catalog = catalogFile
	}
	if duplicatesFlag != "" {
		pol, err := manifest.ParseDuplicatePolicy(duplicatesFlag)
		if err != nil {
			msg.Die("%s", err)
		}
		conf.Duplicates = pol.String()
	}

	return conf
}

// EnsureManifestPath returns the build script to work on.
//
// The command line wins, then the settings file, then the closest build
// script to the working directory.
func EnsureManifestPath(conf *cfg.Config) string {
	if gpath.ManifestFile == "" && conf.Manifest != "" {
		return conf.Manifest
	}
	p, err := gpath.Manifest()
	if err != nil {
		msg.Die("Could not find a build script: %s", err)
	}
	return p
}

// EnsureCatalog loads the version catalog for the build script at
// manifestPath. It returns nil when the project has no catalog.
func EnsureCatalog(conf *cfg.Config, manifestPath string) *catalog.Catalog {
	p := conf.Catalog
	if p == "" {
		p = gpath.Catalog(manifestPath)
	}
	if p == "" {
		return nil
	}

	c, err := catalog.Load(p)
	if err != nil {
		msg.Die("Failed to load version catalog %s: %s", p, err)
	}
	msg.Debug("Using version catalog %s", p)
	return c
}

// EnsureManifest reads and parses the build script. It returns the parsed
// manifest, the path it was read from and the text of the script.
//
// Any error will cause an immediate exit, with an error printed to Stderr.
func EnsureManifest(conf *cfg.Config) (*manifest.Manifest, string, string) {
	p := EnsureManifestPath(conf)
	b, err := os.ReadFile(p)
	if err != nil {
		msg.Die("Failed to load %s: %s", p, err)
	}

	parser := &manifest.Parser{
		Duplicates: conf.Policy(),
		Catalog:    EnsureCatalog(conf, p),
	}
	m, err := parser.Parse(string(b))
	if err != nil {
		msg.Die("Failed to parse %s: %s", gpath.StripBasepath(p), err)
	}
	msg.Debug("Read %d dependencies from %s", m.Len(), p)

	return m, p, string(b)
}
