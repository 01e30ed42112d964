package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Icons == nil {
		cfg.Icons = map[string]string{}
	}

	return cfg, nil
}

// Template is the commented configuration template written by `mdcallout init`.
const Template = `# mdcallout configuration
#
# types lists the recognized admonition types, in match order.
types:
  - note
  - tip
  - warning
  - danger
  - info

# icons maps type names to glyphs shown before the title.
icons: {}

# marker is the repeating fence character for the :::-style syntax.
marker: ":"

# obsidian_style enables "> [!type] Title" callouts.
obsidian_style: true

# docusaurus_style enables ":::type Title" fenced containers.
docusaurus_style: true
`
