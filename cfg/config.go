package cfg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/gradlefile/manifest"
	"gopkg.in/yaml.v2"
)

// DefaultMarker is the annotation analysis tools look for when no other
// marker is configured.
const DefaultMarker = "exhortignore"

// Config is the top-level settings object.
type Config struct {
	// Marker is the comment token that flags a dependency for exclusion.
	Marker string `yaml:"marker"`

	// Duplicates is the name of a duplicate policy: allow, reject or
	// last-wins.
	Duplicates string `yaml:"duplicates,omitempty"`

	// Catalog is a path to a version catalog. Relative paths are relative
	// to the settings file.
	Catalog string `yaml:"catalog,omitempty"`

	// Manifest is a path to the build script.
	Manifest string `yaml:"manifest,omitempty"`
}

// A transitive representation of the settings for reading from yaml.
type cf struct {
	Marker     *string `yaml:"marker"`
	Duplicates *string `yaml:"duplicates,omitempty"`
	Catalog    *string `yaml:"catalog,omitempty"`
	Manifest   *string `yaml:"manifest,omitempty"`
}

// Default returns the settings used when there is no settings file.
func Default() *Config {
	return &Config{
		Marker:     DefaultMarker,
		Duplicates: manifest.AllowDuplicates.String(),
	}
}

// ConfigFromYaml returns an instance of Config from YAML
func ConfigFromYaml(yml []byte) (*Config, error) {
	c := Default()
	err := yaml.Unmarshal(yml, &c)
	return c, err
}

// Marshal converts a Config instance to YAML
func (c *Config) Marshal() ([]byte, error) {
	yml, err := yaml.Marshal(&c)
	if err != nil {
		return []byte{}, err
	}
	return yml, nil
}

// UnmarshalYAML is a hook for gopkg.in/yaml.v2 in the unmarshalling process
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	newConfig := &cf{
		&c.Marker,
		&c.Duplicates,
		&c.Catalog,
		&c.Manifest,
	}
	if err := unmarshal(&newConfig); err != nil {
		return err
	}

	c.Marker = strings.TrimSpace(c.Marker)
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}

	p, err := manifest.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return err
	}
	c.Duplicates = p.String()

	return nil
}

// Policy returns the duplicate policy the settings name.
func (c *Config) Policy() manifest.DuplicatePolicy {
	p, err := manifest.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return manifest.AllowDuplicates
	}
	return p
}

// Clone performs a deep clone of the Config instance
func (c *Config) Clone() *Config {
	n := *c
	return &n
}

// Load reads a settings file. An empty path, or one that does not exist,
// gives the defaults. Relative catalog and manifest paths are made relative
// to the directory holding the file.
func Load(p string) (*Config, error) {
	if p == "" {
		return Default(), nil
	}
	yml, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}
	c, err := ConfigFromYaml(yml)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(p)
	if c.Catalog != "" && !filepath.IsAbs(c.Catalog) {
		c.Catalog = filepath.Join(dir, c.Catalog)
	}
	if c.Manifest != "" && !filepath.IsAbs(c.Manifest) {
		c.Manifest = filepath.Join(dir, c.Manifest)
	}
	return c, nil
}

// WriteFile writes the settings to p.
func (c *Config) WriteFile(p string) error {
	o, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(p, o, 0666)
}
