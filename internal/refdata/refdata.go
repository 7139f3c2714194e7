// Package refdata loads the two reference tables the reconciler needs:
// the description translation table and the agent connection edge list.
//
// Unlike the source extractors, these loaders fail fast: the merged
// output is meaningless without the reference data, so a missing or
// malformed file aborts the build before anything is written.
package refdata

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/errors"
)

// Set bundles both reference tables for the reconciler.
type Set struct {
	// Translations maps agent ids to English descriptions that
	// override the raw catalog description.
	Translations map[string]string

	// Connections is the directed edge list the symmetric connection
	// graph is built from.
	Connections []catalog.ConnectionEdge
}

// connectionsDoc is the on-disk shape of the connections table.
type connectionsDoc struct {
	Connections []catalog.ConnectionEdge `yaml:"connections"`
}

// Load reads both reference tables. Any failure is fatal.
func Load(translationsPath, connectionsPath string) (*Set, error) {
	translations, err := LoadTranslations(translationsPath)
	if err != nil {
		return nil, err
	}

	connections, err := LoadConnections(connectionsPath)
	if err != nil {
		return nil, err
	}

	return &Set{Translations: translations, Connections: connections}, nil
}

// LoadTranslations reads the id→description translation table.
func LoadTranslations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapResource("load", "translation table", path, err)
	}

	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if translations == nil {
		translations = make(map[string]string)
	}
	return translations, nil
}

// LoadConnections reads the connection edge list.
func LoadConnections(path string) ([]catalog.ConnectionEdge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapResource("load", "connection table", path, err)
	}

	var doc connectionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return doc.Connections, nil
}
