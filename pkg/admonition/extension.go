// Package admonition implements Markdown admonition (callout) blocks for
// the mdtok block tokenizer, in two surface syntaxes:
//
//   - fenced container: ":::note Title" ... ":::"  (Docusaurus style)
//   - blockquote callout: "> [!note] Title"        (Obsidian style)
//
// Both syntaxes emit the same admonition_<type>_open/_close token pair, so
// a single set of render rules covers them. Configuration problems are
// reported by New; failed recognition at parse time is a plain non-match
// that hands the line back to the host's rule chain.
package admonition

import (
	"fmt"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// Block rule names as they appear in the host chain.
const (
	fenceRuleName   = "admonition_fence"
	calloutRuleName = "admonition_callout"
)

// altCategories are the rule categories the admonition rules may terminate
// when probed in silent mode.
var altCategories = []string{"paragraph", "reference", "blockquote", "list"}

// Extension carries the immutable registry and syntax configuration built
// by New. One Extension can be attached to any number of parsers.
type Extension struct {
	registry   *Registry
	marker     string
	obsidian   bool
	docusaurus bool
}

// New validates and merges opts with the defaults and builds the extension.
// All configuration errors surface here, before any parsing can happen.
func New(opts Options) (*Extension, error) {
	types := opts.Types
	if len(types) == 0 {
		types = DefaultTypes()
	}
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	if err := opts.validate(marker, types); err != nil {
		return nil, fmt.Errorf("admonition configuration: %w", err)
	}

	return &Extension{
		registry:   newRegistry(opts, types),
		marker:     marker,
		obsidian:   boolOrDefault(opts.ObsidianStyle, true),
		docusaurus: boolOrDefault(opts.DocusaurusStyle, true),
	}, nil
}

// MustNew is New for static configuration; it panics on configuration
// errors.
func MustNew(opts Options) *Extension {
	ext, err := New(opts)
	if err != nil {
		panic(err)
	}
	return ext
}

// Registry exposes the immutable type registry.
func (e *Extension) Registry() *Registry {
	return e.registry
}

// Marker returns the effective fence marker.
func (e *Extension) Marker() string {
	return e.marker
}

// ObsidianEnabled reports whether the blockquote-callout syntax is enabled.
func (e *Extension) ObsidianEnabled() bool {
	return e.obsidian
}

// DocusaurusEnabled reports whether the fenced-container syntax is enabled.
func (e *Extension) DocusaurusEnabled() bool {
	return e.docusaurus
}

// Attach plugs the enabled block rules and the per-type render rules into
// p. Attach is idempotent: a rule name or render kind that is already
// present is left as-is (first registration wins), so re-attaching the
// same configuration never double-registers.
func (e *Extension) Attach(p *mdtok.Parser) error {
	if e.docusaurus && !p.Block.Has(fenceRuleName) {
		if err := p.Block.Before("fence", fenceRuleName, e.fenceRule, altCategories...); err != nil {
			return fmt.Errorf("register %s: %w", fenceRuleName, err)
		}
	}
	if e.obsidian && !p.Block.Has(calloutRuleName) {
		if err := p.Block.Before("blockquote", calloutRuleName, e.calloutRule, altCategories...); err != nil {
			return fmt.Errorf("register %s: %w", calloutRuleName, err)
		}
	}

	for _, typ := range e.registry.Types() {
		if p.Renderer.Has(typ.OpenKind) {
			continue
		}
		openFn, closeFn := typ.Render.Open, typ.Render.Close
		if openFn == nil {
			openFn = defaultOpenRender(typ)
			closeFn = defaultCloseRender(typ)
		}
		p.Renderer.Register(typ.OpenKind, openFn)
		p.Renderer.Register(typ.CloseKind, closeFn)
	}

	return nil
}
