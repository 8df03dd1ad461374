package mirrors

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Mirrors is the content of a mirrors.yaml file.
type Mirrors struct {
	Repos MirrorRepos `yaml:"repos"`
}

// MirrorRepos is a slice of Mirror pointers
type MirrorRepos []*MirrorRepo

// MirrorRepo replaces one repository, named as the build script names it
// (mavenCentral, or a URL), with another URL.
type MirrorRepo struct {
	Original string `yaml:"original"`
	URL      string `yaml:"url"`
}

// FromYaml parses the content of a mirrors.yaml file. Every mirror needs an
// original and an absolute URL.
func FromYaml(yml []byte) (*Mirrors, error) {
	ov := &Mirrors{}
	if err := yaml.Unmarshal(yml, ov); err != nil {
		return nil, err
	}
	for _, r := range ov.Repos {
		if r.Original == "" {
			return nil, fmt.Errorf("Mirror for %q has no original repository", r.URL)
		}
		if u, err := url.Parse(r.URL); err != nil || !u.IsAbs() {
			return nil, fmt.Errorf("Mirror for %s has an invalid URL %q", r.Original, r.URL)
		}
	}
	return ov, nil
}

// ReadMirrorsFile loads the contents of a mirrors.yaml file.
func ReadMirrorsFile(opath string) (*Mirrors, error) {
	yml, err := os.ReadFile(opath)
	if err != nil {
		return nil, err
	}
	return FromYaml(yml)
}

// Marshal converts the mirrors to YAML, sorted by original repository
// without regard to case.
func (ov *Mirrors) Marshal() ([]byte, error) {
	sort.SliceStable(ov.Repos, func(i, j int) bool {
		return strings.ToLower(ov.Repos[i].Original) < strings.ToLower(ov.Repos[j].Original)
	})
	return yaml.Marshal(ov)
}

// WriteFile writes a mirrors.yaml file, replacing any file at opath.
func (ov *Mirrors) WriteFile(opath string) error {
	o, err := ov.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(opath, o, 0666)
}

// Set adds a mirror for original, replacing any mirror it already has. It
// returns true when an existing mirror was replaced.
func (ov *Mirrors) Set(original, u string) bool {
	for _, r := range ov.Repos {
		if r.Original == original {
			r.URL = u
			return true
		}
	}
	ov.Repos = append(ov.Repos, &MirrorRepo{Original: original, URL: u})
	return false
}

// Remove drops the mirror for original. It returns false when there was none.
func (ov *Mirrors) Remove(original string) bool {
	for i, r := range ov.Repos {
		if r.Original == original {
			ov.Repos = append(ov.Repos[:i], ov.Repos[i+1:]...)
			return true
		}
	}
	return false
}
