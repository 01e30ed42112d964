package goldmarkadm

import (
	"unicode"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdcallout/pkg/admonition"
)

// htmlRenderer renders Admonition nodes with the same div structure the
// mdtok render rules produce, so both engines emit interchangeable HTML.
type htmlRenderer struct {
	registry *admonition.Registry
}

func newHTMLRenderer(registry *admonition.Registry) renderer.NodeRenderer {
	return &htmlRenderer{registry: registry}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.renderAdmonition)
}

func (r *htmlRenderer) renderAdmonition(
	w util.BufWriter, _ []byte, node gast.Node, entering bool,
) (gast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</div>\n</div>\n")
		return gast.WalkContinue, nil
	}

	n := node.(*Admonition)

	_, _ = w.WriteString(`<div class="admonition admonition-`)
	_, _ = w.WriteString(n.Name)
	_, _ = w.WriteString("\">\n")

	_, _ = w.WriteString(`<div class="admonition-title">`)
	if typ := r.registry.Get(n.Name); typ != nil && typ.Icon != "" {
		_, _ = w.WriteString(`<span class="admonition-icon">`)
		_, _ = w.WriteString(typ.Icon)
		_, _ = w.WriteString(`</span>`)
	}
	title := n.Title
	if title == "" {
		title = capitalize(n.Name)
	}
	_, _ = w.Write(util.EscapeHTML([]byte(title)))
	_, _ = w.WriteString("</div>\n")

	_, _ = w.WriteString(`<div class="admonition-content">`)
	_, _ = w.WriteString("\n")

	return gast.WalkContinue, nil
}

func capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
