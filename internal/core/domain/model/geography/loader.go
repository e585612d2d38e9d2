package geography

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var countriesYAML []byte

type countriesDocument struct {
	Countries []Country `yaml:"countries"`
}

// LoadDirectory decodes the embedded country table into a Directory.
func LoadDirectory() (*Directory, error) {
	var doc countriesDocument
	if err := yaml.Unmarshal(countriesYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode country table: %w", err)
	}
	return NewDirectory(doc.Countries)
}
