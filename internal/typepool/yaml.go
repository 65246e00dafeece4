package typepool

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a type file from disk
func LoadYAML(path string) ([]TypeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading type file %s", path)
	}
	entries, err := ParseYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing type file %s", path)
	}
	return entries, nil
}

// ParseYAML parses type file contents
func ParseYAML(data []byte) ([]TypeEntry, error) {
	var f TypeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Types, nil
}

// MarshalYAML renders entries as a type file
func MarshalYAML(entries []TypeEntry) ([]byte, error) {
	return yaml.Marshal(TypeFile{Types: entries})
}
