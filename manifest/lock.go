package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Lockfile is a snapshot of the dependencies of a build script. It is
// written next to the script and lets tools notice when the declared
// dependencies change.
type Lockfile struct {
	Hash         string    `yaml:"hash"`
	Updated      time.Time `yaml:"updated"`
	Dependencies Locks     `yaml:"dependencies"`
}

// Hash returns the hex encoded sha256 of a build script's text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// NewLockfile creates a Lockfile for m. hash is normally Hash of the text m
// was parsed from.
func NewLockfile(m *Manifest, hash string) *Lockfile {
	lf := &Lockfile{
		Hash:         hash,
		Updated:      time.Now(),
		Dependencies: make(Locks, 0, m.Len()),
	}

	for _, d := range m.dependencies {
		lf.Dependencies = append(lf.Dependencies, &Lock{
			Group:         d.Coordinate.Group,
			Artifact:      d.Coordinate.Artifact,
			Version:       d.Coordinate.Version,
			Configuration: string(d.Configuration),
		})
	}

	sort.Sort(lf.Dependencies)

	return lf
}

// LockfileFromYaml returns an instance of Lockfile from YAML
func LockfileFromYaml(yml []byte) (*Lockfile, error) {
	lock := &Lockfile{}
	err := yaml.Unmarshal(yml, &lock)
	return lock, err
}

// Marshal converts a Lockfile instance to YAML
func (lf *Lockfile) Marshal() ([]byte, error) {
	sort.Sort(lf.Dependencies)
	yml, err := yaml.Marshal(&lf)
	if err != nil {
		return []byte{}, err
	}
	return yml, nil
}

// WriteFile writes a lock file.
//
// This is a convenience function that marshals the YAML and then writes it to
// the given file. If the file exists, it will be clobbered.
func (lf *Lockfile) WriteFile(lockpath string) error {
	o, err := lf.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(lockpath, o, 0666)
}

// Clone returns a clone of Lockfile
func (lf *Lockfile) Clone() *Lockfile {
	n := &Lockfile{}
	n.Hash = lf.Hash
	n.Updated = lf.Updated
	n.Dependencies = lf.Dependencies.Clone()

	return n
}

// Fingerprint returns a hash of the dependencies only. Two lock files with
// the same dependencies have the same fingerprint even when their text hash
// and updated times differ.
func (lf *Lockfile) Fingerprint() ([32]byte, error) {
	c := lf.Clone()
	c.Hash = ""
	c.Updated = time.Time{}
	yml, err := c.Marshal()
	if err != nil {
		return [32]byte{}, err
	}

	return sha256.Sum256(yml), nil
}

// Locks is a slice of locked dependencies.
type Locks []*Lock

// Clone returns a Clone of Locks.
func (l Locks) Clone() Locks {
	n := make(Locks, 0, len(l))
	for _, v := range l {
		n = append(n, v.Clone())
	}
	return n
}

// Len returns the length of the Locks. This is needed for sorting with
// the sort package.
func (l Locks) Len() int {
	return len(l)
}

// Less is needed for the sort interface. It orders locks by group:artifact,
// then configuration, then version.
func (l Locks) Less(i, j int) bool {

	// Names are compared in lowercase so that sorting does not depend on
	// the case of a group.
	a, b := strings.ToLower(l[i].Name()), strings.ToLower(l[j].Name())
	if a != b {
		return a < b
	}
	if l[i].Configuration != l[j].Configuration {
		return l[i].Configuration < l[j].Configuration
	}
	return l[i].Version < l[j].Version
}

// Swap is needed for the sort interface. It swaps the position of two
// locks.
func (l Locks) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// Lock is an individual locked dependency.
type Lock struct {
	Group         string `yaml:"group"`
	Artifact      string `yaml:"artifact"`
	Version       string `yaml:"version"`
	Configuration string `yaml:"configuration"`
}

// Name returns group:artifact.
func (l *Lock) Name() string {
	return l.Group + ":" + l.Artifact
}

// Clone creates a clone of a Lock.
func (l *Lock) Clone() *Lock {
	return &Lock{
		Group:         l.Group,
		Artifact:      l.Artifact,
		Version:       l.Version,
		Configuration: l.Configuration,
	}
}
