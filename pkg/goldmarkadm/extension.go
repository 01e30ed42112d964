// Package goldmarkadm exposes the admonition syntaxes as a goldmark
// extension. The fenced-container style is a block parser; the
// blockquote-callout style is an AST transformer over parsed blockquotes,
// since goldmark's own blockquote parser claims '>'-prefixed lines first.
// Both produce Admonition nodes rendered with the same markup as the mdtok
// render rules.
package goldmarkadm

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdcallout/pkg/admonition"
)

// Extension is the goldmark Extender. Build it with New from the same
// Options the mdtok extension takes.
type Extension struct {
	core *admonition.Extension
}

// New validates opts through the admonition core and wraps it for goldmark.
// Configuration errors are the same ones admonition.New reports.
func New(opts admonition.Options) (*Extension, error) {
	core, err := admonition.New(opts)
	if err != nil {
		return nil, err
	}
	return &Extension{core: core}, nil
}

// MustNew is New for static configuration; it panics on configuration
// errors.
func MustNew(opts admonition.Options) *Extension {
	ext, err := New(opts)
	if err != nil {
		panic(err)
	}
	return ext
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	if e.core.DocusaurusEnabled() {
		m.Parser().AddOptions(parser.WithBlockParsers(
			util.Prioritized(newFencedParser(e.core.Registry(), e.core.Marker()), 100),
		))
	}
	if e.core.ObsidianEnabled() {
		m.Parser().AddOptions(parser.WithASTTransformers(
			util.Prioritized(newCalloutTransformer(e.core.Registry()), 500),
		))
	}
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newHTMLRenderer(e.core.Registry()), 500),
	))
}
