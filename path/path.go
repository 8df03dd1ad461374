// Package path contains path and environment utilities for gradlefile.
//
// This includes finding the build script of a project along with the version
// catalog, lock file and settings that belong to it.
package path

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// DefaultManifestFile is the build script looked for first.
const DefaultManifestFile = "build.gradle.kts"

// GroovyManifestFile is the build script looked for when there is no Kotlin
// one.
const GroovyManifestFile = "build.gradle"

// CatalogFile is the location of the version catalog relative to the
// directory of the build script.
var CatalogFile = filepath.Join("gradle", "libs.versions.toml")

// ConfigFile is the name of the settings file.
const ConfigFile = ".gradlefile.yaml"

// LockFile is the default name for the lock file.
const LockFile = "gradlefile.lock"

// Cache the location of the homedirectory.
var homeDir = ""

// ManifestFile is the build script given on the command line, if any.
//
// Setting this is not concurrency safe. For consistency, it should really
// only be set once, at startup, or not at all.
var ManifestFile = ""

// Home returns the gradlefile home directory ($GRADLEFILE_HOME or
// ~/.gradlefile, typically).
func Home() string {
	if homeDir != "" {
		return homeDir
	}

	// Initialize the default user.
	u, err := user.Current()
	if err == nil && u.HomeDir != "" {
		homeDir = filepath.Join(u.HomeDir, ".gradlefile")
	} else {
		cwd, err := os.Getwd()
		if err == nil {
			homeDir = filepath.Join(cwd, ".gradlefile")
		} else {
			homeDir = ".gradlefile"
		}
	}

	return homeDir
}

// SetHome sets the home directory for gradlefile.
func SetHome(h string) {
	homeDir = h
}

// Manifest gets the path to the build script.
//
// ManifestFile is used when set. Otherwise the closest build script to the
// working directory is used.
func Manifest() (string, error) {
	if ManifestFile != "" {
		return filepath.Abs(ManifestFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return ManifestWD(cwd)
}

// ManifestWD finds the build script closest to dir.
//
// A Kotlin script wins over a Groovy one in the same directory. If neither
// is found in dir, it recurses up a directory.
func ManifestWD(dir string) (string, error) {
	for _, name := range []string{DefaultManifestFile, GroovyManifestFile} {
		fullpath := filepath.Join(dir, name)
		if isFile(fullpath) {
			return fullpath, nil
		}
	}

	base := filepath.Dir(dir)
	if base == dir {
		return "", fmt.Errorf("No %s or %s found", DefaultManifestFile, GroovyManifestFile)
	}

	return ManifestWD(base)
}

// Catalog returns the version catalog next to the build script, or "" when
// the project does not have one.
func Catalog(manifest string) string {
	p := filepath.Join(filepath.Dir(manifest), CatalogFile)
	if isFile(p) {
		return p
	}
	return ""
}

// Lock returns where the lock file for a build script lives.
func Lock(manifest string) string {
	return filepath.Join(filepath.Dir(manifest), LockFile)
}

// Config returns the settings file that applies to a build script: the
// project's own .gradlefile.yaml, else config.yaml in Home, else "".
func Config(manifest string) string {
	p := filepath.Join(filepath.Dir(manifest), ConfigFile)
	if isFile(p) {
		return p
	}
	p = filepath.Join(Home(), "config.yaml")
	if isFile(p) {
		return p
	}
	return ""
}

// Basepath returns the current working directory.
//
// If there is an error getting the working directory, this returns ".", which
// should function in cases where the directory is unlinked... Then again,
// maybe not.
func Basepath() string {
	base, err := os.Getwd()
	if err != nil {
		return "."
	}
	return base
}

// StripBasepath removes the base directory from a passed in path.
func StripBasepath(p string) string {
	bp := Basepath()
	return strings.TrimPrefix(p, bp+string(os.PathSeparator))
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
