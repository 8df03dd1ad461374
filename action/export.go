package action

import (
	"encoding/json"
	"strings"

	"github.com/Masterminds/gradlefile/msg"
	"gopkg.in/yaml.v2"
)

// Export prints the whole manifest as yaml or json.
func Export(format string) {
	conf := EnsureConfig()
	m, _, _ := EnsureManifest(conf)

	var out []byte
	var err error
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		out, err = yaml.Marshal(m)
	case "json":
		out, err = json.MarshalIndent(m, "", "  ")
		out = append(out, '\n')
	default:
		msg.Die("Unknown export format %q, use yaml or json", format)
	}
	if err != nil {
		msg.Die("Failed to export: %s", err)
	}
	msg.Print(string(out))
}
