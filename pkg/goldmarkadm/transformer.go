package goldmarkadm

import (
	"strings"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdcallout/pkg/admonition"
)

// calloutTransformer rewrites blockquotes whose first line is a
// "[!type] Title" header into Admonition nodes. goldmark's blockquote
// parser has already stripped the '>' prefixes and parsed the interior, so
// the callout syntax is applied as a post-parse AST transformation rather
// than a competing block parser.
type calloutTransformer struct {
	registry *admonition.Registry
}

func newCalloutTransformer(registry *admonition.Registry) parser.ASTTransformer {
	return &calloutTransformer{registry: registry}
}

// Transform implements parser.ASTTransformer.
func (t *calloutTransformer) Transform(doc *gast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	// Collect first, then rewrite: replacing nodes mid-walk would skip
	// callouts nested inside other callouts.
	var quotes []*gast.Blockquote
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if entering {
			if bq, ok := n.(*gast.Blockquote); ok {
				quotes = append(quotes, bq)
			}
		}
		return gast.WalkContinue, nil
	})

	for _, bq := range quotes {
		t.rewrite(bq, source)
	}
}

func (t *calloutTransformer) rewrite(bq *gast.Blockquote, source []byte) {
	parent := bq.Parent()
	if parent == nil {
		return
	}

	para, ok := bq.FirstChild().(*gast.Paragraph)
	if !ok || para.Lines().Len() == 0 {
		return
	}

	firstLine := para.Lines().At(0)
	name, title, ok := parseCalloutHeader(string(firstLine.Value(source)))
	if !ok {
		return
	}
	typ := t.registry.Get(name)
	if typ == nil {
		return
	}

	// Drop the header line. Transformers run after inline parsing, so the
	// header's inline text nodes have to go too, not just the segment.
	if para.Lines().Len() > 1 {
		rest := text.NewSegments()
		for i := 1; i < para.Lines().Len(); i++ {
			rest.Append(para.Lines().At(i))
		}
		para.SetLines(rest)
		dropHeaderInlines(para, firstLine.Stop)
	} else {
		bq.RemoveChild(bq, para)
	}

	adm := NewAdmonition(typ.Name, title, false)
	for child := bq.FirstChild(); child != nil; {
		next := child.NextSibling()
		adm.AppendChild(adm, child)
		child = next
	}

	parent.ReplaceChild(parent, bq, adm)
}

// dropHeaderInlines removes the paragraph's leading inline text nodes that
// lie entirely within the header line (everything before stop). Non-text
// inlines stop the scan; formatted header remainders stay in the body.
func dropHeaderInlines(para *gast.Paragraph, stop int) {
	for child := para.FirstChild(); child != nil; {
		textNode, ok := child.(*gast.Text)
		if !ok || textNode.Segment.Stop > stop {
			return
		}
		next := child.NextSibling()
		para.RemoveChild(para, child)
		child = next
	}
}

// parseCalloutHeader matches "[!type] optional title" at the start of the
// header line (the blockquote marker is already stripped). The bracketed
// text is lower-cased; the title is the trimmed remainder.
func parseCalloutHeader(header string) (name, title string, ok bool) {
	header = strings.TrimRight(header, "\r\n")
	if !strings.HasPrefix(header, "[!") {
		return "", "", false
	}
	closing := strings.IndexByte(header, ']')
	if closing < 0 {
		return "", "", false
	}
	name = strings.ToLower(header[2:closing])
	if name == "" {
		return "", "", false
	}
	title = strings.TrimSpace(header[closing+1:])
	return name, title, true
}
