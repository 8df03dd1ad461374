// Package catalog reads Gradle version catalogs.
//
// A version catalog (gradle/libs.versions.toml) names libraries once so that
// build scripts can refer to them as libs.<alias>:
//
//	[versions]
//	quarkus = "2.13.5.Final"
//
//	[libraries]
//	quarkus-agroal = { module = "io.quarkus:quarkus-agroal", version.ref = "quarkus" }
//	log4j = "log4j:log4j:1.2.17"
//
// Only the versions and libraries tables are read. Bundles and plugins are
// ignored.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Accessor is the prefix build scripts use to refer to catalog entries.
const Accessor = "libs"

// Library is a resolved catalog entry.
type Library struct {
	Alias   string
	Group   string
	Name    string
	Version string
}

// Reference returns the accessor a build script uses for l, such as
// libs.quarkus.agroal for the alias quarkus-agroal.
func (l Library) Reference() string {
	return Accessor + "." + normalize(l.Alias)
}

// Catalog is a parsed version catalog. It is read-only after Parse.
type Catalog struct {
	libraries map[string]Library
}

type document struct {
	Versions  map[string]interface{} `toml:"versions"`
	Libraries map[string]interface{} `toml:"libraries"`
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", path, err)
	}
	return c, nil
}

// Parse parses the TOML text of a version catalog. Every library must resolve
// to a group, a name and, when it declares one, a known version.
func Parse(data []byte) (*Catalog, error) {
	doc := &document{}
	if err := toml.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	versions := map[string]string{}
	for k, v := range doc.Versions {
		s, ok := versionString(v)
		if !ok {
			return nil, fmt.Errorf("Version %s has no usable value", k)
		}
		versions[k] = s
	}

	c := &Catalog{libraries: map[string]Library{}}
	for alias, v := range doc.Libraries {
		lib, err := library(alias, v, versions)
		if err != nil {
			return nil, err
		}
		key := normalize(alias)
		if prev, ok := c.libraries[key]; ok {
			return nil, fmt.Errorf("Libraries %s and %s map to the same accessor", prev.Alias, alias)
		}
		c.libraries[key] = lib
	}
	return c, nil
}

// Resolve looks up a libs.* reference such as libs.quarkus.agroal. The
// separators '-', '_' and '.' in aliases are interchangeable, as they are
// for Gradle's generated accessors.
func (c *Catalog) Resolve(ref string) (Library, error) {
	alias := strings.TrimPrefix(ref, Accessor+".")
	lib, ok := c.libraries[normalize(alias)]
	if !ok {
		return Library{}, fmt.Errorf("No library %s in the version catalog", ref)
	}
	if lib.Version == "" {
		return lib, fmt.Errorf("Library %s has no version", ref)
	}
	return lib, nil
}

// Libraries returns every library sorted by alias.
func (c *Catalog) Libraries() []Library {
	n := make([]Library, 0, len(c.libraries))
	for _, l := range c.libraries {
		n = append(n, l)
	}
	sort.Slice(n, func(i, j int) bool { return n[i].Alias < n[j].Alias })
	return n
}

func library(alias string, v interface{}, versions map[string]string) (Library, error) {
	lib := Library{Alias: alias}
	switch t := v.(type) {
	case string:
		parts := strings.Split(t, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return lib, fmt.Errorf("Library %s: %q is not group:name[:version]", alias, t)
		}
		lib.Group, lib.Name = parts[0], parts[1]
		if len(parts) == 3 {
			lib.Version = parts[2]
		}
	case map[string]interface{}:
		if m, ok := t["module"].(string); ok {
			parts := strings.Split(m, ":")
			if len(parts) != 2 {
				return lib, fmt.Errorf("Library %s: module %q is not group:name", alias, m)
			}
			lib.Group, lib.Name = parts[0], parts[1]
		} else {
			lib.Group, _ = t["group"].(string)
			lib.Name, _ = t["name"].(string)
		}
		if ver, ok := t["version"]; ok {
			s, err := libraryVersion(alias, ver, versions)
			if err != nil {
				return lib, err
			}
			lib.Version = s
		}
	default:
		return lib, fmt.Errorf("Library %s has an unsupported value", alias)
	}

	if lib.Group == "" || lib.Name == "" {
		return lib, fmt.Errorf("Library %s is missing a group or name", alias)
	}
	return lib, nil
}

func libraryVersion(alias string, v interface{}, versions map[string]string) (string, error) {
	if m, ok := v.(map[string]interface{}); ok {
		if ref, ok := m["ref"].(string); ok {
			s, ok := versions[ref]
			if !ok {
				return "", fmt.Errorf("Library %s refers to unknown version %s", alias, ref)
			}
			return s, nil
		}
	}
	s, ok := versionString(v)
	if !ok {
		return "", fmt.Errorf("Library %s has no usable version", alias)
	}
	return s, nil
}

// versionString reads a plain version or the first of a rich version's
// strictly, require and prefer entries.
func versionString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case map[string]interface{}:
		for _, k := range []string{"strictly", "require", "prefer"} {
			if s, ok := t[k].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func normalize(alias string) string {
	r := strings.NewReplacer("-", ".", "_", ".")
	return strings.ToLower(r.Replace(alias))
}
