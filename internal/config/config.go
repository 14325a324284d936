// Package config reads the optional YAML run configuration. Every key
// mirrors a command-line flag; flags that are set explicitly win.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration.
type File struct {
	Adapters        []string `yaml:"adapters"`
	Barcodes        []string `yaml:"barcodes"`
	AdapterPreset   string   `yaml:"adapter_preset"`
	PresetSecondary bool     `yaml:"preset_secondary"`
	RCMode          string   `yaml:"rc_mode"`
	Transactional   bool     `yaml:"transactional"`

	Output      string `yaml:"output"`
	Pretty      bool   `yaml:"pretty"`
	Report      string `yaml:"report"`
	MetricsFile string `yaml:"metrics_file"`

	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`
}

// Load reads path. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = fh.Close() }()

	cfg, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses one YAML document from r. An empty document yields a zero File.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}
