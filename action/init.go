package action

import (
	gpath "github.com/Masterminds/gradlefile/path"
)

// Overrides set on the command line. They win over the settings file.
var (
	catalogFile    string
	configFile     string
	duplicatesFlag string
)

// Init initializes the action subsystem for handling one or more subsequent
// actions. Empty arguments leave the matching setting alone.
func Init(file, catalog, config, home, duplicates string) {
	gpath.ManifestFile = file
	if home != "" {
		gpath.SetHome(home)
	}
	catalogFile = catalog
	configFile = config
	duplicatesFlag = duplicates
}
