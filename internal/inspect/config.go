package inspect

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML file accepted by --config. Command line flags take
// precedence over every field.
//
//	shape: [2, 3]
//	values: [1, 2, 3, 4, 5, 6]
//	index: [1]
type Config struct {
	Shape  []int     `yaml:"shape"`
	Values []float64 `yaml:"values"`
	Fill   *float64  `yaml:"fill"`
	Index  []int     `yaml:"index"`
}

// LoadConfig reads a Config from a YAML file. Unknown keys are rejected; an
// empty file yields an empty Config.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open config")
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "could not parse config %s", path)
	}
	return &cfg, nil
}
