package goldmarkadm

import (
	gast "github.com/yuin/goldmark/ast"
)

// Admonition is the block node both admonition syntaxes produce.
type Admonition struct {
	gast.BaseBlock

	// Name is the lower-case admonition type.
	Name string

	// Title is the optional display title; empty falls back to the
	// capitalized type name at render time.
	Title string

	// Fenced records which surface syntax produced the node.
	Fenced bool

	// fenceLength is the marker repetition count of the opening fence;
	// the closing fence needs at least as many. Zero for callouts.
	fenceLength int
}

// KindAdmonition is the node kind of Admonition.
var KindAdmonition = gast.NewNodeKind("Admonition")

// Kind implements ast.Node.
func (n *Admonition) Kind() gast.NodeKind {
	return KindAdmonition
}

// Dump implements ast.Node.
func (n *Admonition) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Name,
		"Title": n.Title,
	}, nil)
}

// NewAdmonition creates an Admonition node.
func NewAdmonition(name, title string, fenced bool) *Admonition {
	return &Admonition{
		Name:   name,
		Title:  title,
		Fenced: fenced,
	}
}
