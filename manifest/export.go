package manifest

import "encoding/json"

// document is the exported shape of a Manifest.
type document struct {
	Group        string       `yaml:"group,omitempty" json:"group,omitempty"`
	Version      string       `yaml:"version,omitempty" json:"version,omitempty"`
	Plugins      []Plugin     `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Repositories []string     `yaml:"repositories,omitempty" json:"repositories,omitempty"`
	Dependencies []Dependency `yaml:"dependencies" json:"dependencies"`
	Tasks        []Task       `yaml:"tasks,omitempty" json:"tasks,omitempty"`
}

func (m *Manifest) document() *document {
	return &document{
		Group:        m.group,
		Version:      m.version,
		Plugins:      m.Plugins(),
		Repositories: m.Repositories(),
		Dependencies: m.Dependencies(),
		Tasks:        m.Tasks(),
	}
}

// MarshalYAML is a hook for gopkg.in/yaml.v2 in the marshaling process
func (m *Manifest) MarshalYAML() (interface{}, error) {
	return m.document(), nil
}

// MarshalJSON implements json.Marshaler.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.document())
}
