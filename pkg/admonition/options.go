package admonition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// DefaultTypes is the built-in admonition type list, in registration order.
func DefaultTypes() []string {
	return []string{"note", "tip", "warning", "danger", "info"}
}

// DefaultMarker is the fence marker for the container style.
const DefaultMarker = ":"

// minMarkerCount is the minimum number of full marker repetitions required
// to open or close a fence, independent of marker length.
const minMarkerCount = 3

// Validator decides whether an opening fence line belongs to a type.
// params is the text following the matched marker run, markup the literal
// run itself. Validators must be total: a false result is a non-match, not
// an error.
type Validator func(params, markup string) bool

// RenderPair is a custom open/close renderer pair for one type. A pair
// fully replaces the default pair; supplying only one half is a
// configuration error.
type RenderPair struct {
	Open  mdtok.RenderFunc
	Close mdtok.RenderFunc
}

// Options configures the admonition extension. The zero value selects all
// defaults: the five built-in types, ":" marker, both syntaxes enabled.
type Options struct {
	// Types is the ordered list of recognized type names. Empty means
	// DefaultTypes. Names must be non-empty and lower-case.
	Types []string

	// Icons maps type names to icon glyphs emitted in the title.
	Icons map[string]string

	// Marker is the repeating fence marker for the container style.
	Marker string

	// ObsidianStyle enables the blockquote-callout syntax
	// ("> [!type] Title"). Defaults to true.
	ObsidianStyle *bool

	// DocusaurusStyle enables the fenced-container syntax
	// (":::type Title"). Defaults to true.
	DocusaurusStyle *bool

	// Renders maps type names to custom open/close renderer pairs.
	Renders map[string]RenderPair

	// Validators maps type names to custom fence validators.
	Validators map[string]Validator
}

// Configuration errors surfaced by New. They abort registration; there is
// no automatic recovery.
var (
	ErrInvalidType      = errors.New("invalid admonition type")
	ErrDuplicateType    = errors.New("duplicate admonition type")
	ErrUnknownType      = errors.New("unknown admonition type")
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrAsymmetricRender = errors.New("custom render pair requires both open and close")
	ErrNoStyleEnabled   = errors.New("at least one of obsidian and docusaurus style must be enabled")
)

// validate checks the merged options before any registry is built.
// marker and types are the effective values after defaulting.
func (o *Options) validate(marker string, types []string) error {
	if marker == "" || strings.ContainsAny(marker, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidMarker, marker)
	}

	seen := make(map[string]bool, len(types))
	for _, name := range types {
		if name == "" || name != strings.ToLower(strings.TrimSpace(name)) {
			return fmt.Errorf("%w: %q must be non-empty lower-case", ErrInvalidType, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateType, name)
		}
		seen[name] = true
	}

	for name := range o.Icons {
		if !seen[name] {
			return fmt.Errorf("%w: icon for %q", ErrUnknownType, name)
		}
	}
	for name, pair := range o.Renders {
		if !seen[name] {
			return fmt.Errorf("%w: render pair for %q", ErrUnknownType, name)
		}
		if (pair.Open == nil) != (pair.Close == nil) {
			return fmt.Errorf("%w: type %q", ErrAsymmetricRender, name)
		}
	}
	for name := range o.Validators {
		if !seen[name] {
			return fmt.Errorf("%w: validator for %q", ErrUnknownType, name)
		}
	}

	if !boolOrDefault(o.ObsidianStyle, true) && !boolOrDefault(o.DocusaurusStyle, true) {
		return ErrNoStyleEnabled
	}

	return nil
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
