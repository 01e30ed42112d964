// Package config defines core configuration types for mdcallout.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/mdcallout/pkg/admonition"
)

// Engine selects the Markdown engine used for rendering.
type Engine string

const (
	// EngineNative is the built-in mdtok tokenizer.
	EngineNative Engine = "native"

	// EngineGoldmark renders through goldmark with the admonition
	// extension attached.
	EngineGoldmark Engine = "goldmark"
)

// IsValid returns true if the engine is a known value.
func (e Engine) IsValid() bool {
	switch e {
	case EngineNative, EngineGoldmark:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdcallout.
type Config struct {
	// Types is the ordered list of admonition type names.
	Types []string `yaml:"types"`

	// Icons maps type names to icon glyphs.
	Icons map[string]string `yaml:"icons"`

	// Marker is the fence marker for the container style.
	Marker string `yaml:"marker"`

	// ObsidianStyle enables the "> [!type]" callout syntax.
	ObsidianStyle *bool `yaml:"obsidian_style"`

	// DocusaurusStyle enables the ":::type" fenced syntax.
	DocusaurusStyle *bool `yaml:"docusaurus_style"`

	// CLI-level options (not persisted to config files).

	// Engine selects the rendering engine.
	Engine Engine `yaml:"-"`

	// Output is the output file path; empty means stdout.
	Output string `yaml:"-"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Types:  admonition.DefaultTypes(),
		Icons:  map[string]string{},
		Marker: admonition.DefaultMarker,
		Engine: EngineNative,
	}
}

// Options converts the configuration into extension options.
func (c *Config) Options() admonition.Options {
	return admonition.Options{
		Types:           c.Types,
		Icons:           c.Icons,
		Marker:          c.Marker,
		ObsidianStyle:   c.ObsidianStyle,
		DocusaurusStyle: c.DocusaurusStyle,
	}
}

// Validate checks the configuration. Admonition options are validated by
// building the extension; engine values are checked here.
func (c *Config) Validate() error {
	if c.Engine != "" && !c.Engine.IsValid() {
		return fmt.Errorf("invalid engine %q: must be %q or %q",
			c.Engine, EngineNative, EngineGoldmark)
	}
	if _, err := admonition.New(c.Options()); err != nil {
		return err
	}
	return nil
}
