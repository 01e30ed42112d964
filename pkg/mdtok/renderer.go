package mdtok

import "strings"

// RenderFunc renders the token at index idx of the stream.
type RenderFunc func(tokens []Token, idx int) string

// Renderer turns a token stream into HTML. Rendering is a pure function of
// the stream: render rules are looked up by token kind, with a generic
// fallback for open/close pairs that only carry attributes.
type Renderer struct {
	rules map[string]RenderFunc
}

// NewRenderer creates a Renderer with the default render rules installed.
func NewRenderer() *Renderer {
	r := &Renderer{rules: make(map[string]RenderFunc)}

	r.Register("inline", renderInline)
	r.Register("paragraph_open", staticTag("<p>"))
	r.Register("paragraph_close", staticTag("</p>\n"))
	r.Register("heading_open", renderHeadingOpen)
	r.Register("heading_close", renderHeadingClose)
	r.Register("blockquote_open", staticTag("<blockquote>\n"))
	r.Register("blockquote_close", staticTag("</blockquote>\n"))
	r.Register("fence", renderFence)

	return r
}

// Register installs fn as the render rule for kind, replacing any existing
// rule of the same kind.
func (r *Renderer) Register(kind string, fn RenderFunc) {
	r.rules[kind] = fn
}

// Has reports whether a render rule for kind is installed.
func (r *Renderer) Has(kind string) bool {
	_, ok := r.rules[kind]
	return ok
}

// Render walks the token stream and concatenates the output of each
// token's render rule.
func (r *Renderer) Render(tokens []Token) string {
	var sb strings.Builder
	for idx := range tokens {
		if fn, ok := r.rules[tokens[idx].Kind]; ok {
			sb.WriteString(fn(tokens, idx))
			continue
		}
		sb.WriteString(renderUnknown(tokens, idx))
	}
	return sb.String()
}

func staticTag(tag string) RenderFunc {
	return func([]Token, int) string { return tag }
}

func renderInline(tokens []Token, idx int) string {
	return EscapeHTML(tokens[idx].Content)
}

func renderHeadingOpen(tokens []Token, idx int) string {
	return "<h" + headingLevel(tokens[idx].Markup) + ">"
}

func renderHeadingClose(tokens []Token, idx int) string {
	return "</h" + headingLevel(tokens[idx].Markup) + ">\n"
}

func headingLevel(markup string) string {
	switch len(markup) {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	case 4:
		return "4"
	case 5:
		return "5"
	default:
		return "6"
	}
}

func renderFence(tokens []Token, idx int) string {
	tok := tokens[idx]
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if lang := firstWord(tok.Info); lang != "" {
		sb.WriteString(` class="language-` + EscapeHTML(lang) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(EscapeHTML(tok.Content))
	sb.WriteString("</code></pre>\n")
	return sb.String()
}

// renderUnknown handles kinds without a registered rule: open and close
// tokens become div tags carrying the token's attributes, neutral tokens
// render their escaped content.
func renderUnknown(tokens []Token, idx int) string {
	tok := tokens[idx]
	switch tok.Nesting {
	case 1:
		var sb strings.Builder
		sb.WriteString("<div")
		for _, attr := range tok.Attrs {
			sb.WriteString(" " + attr.Name + `="` + EscapeHTML(attr.Value) + `"`)
		}
		sb.WriteString(">\n")
		return sb.String()
	case -1:
		return "</div>\n"
	default:
		return EscapeHTML(tok.Content)
	}
}

func firstWord(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return text[:i]
	}
	return text
}

// EscapeHTML escapes the four characters that are unsafe in HTML text and
// attribute contexts.
func EscapeHTML(text string) string {
	if !strings.ContainsAny(text, `&<>"`) {
		return text
	}
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(text)
}
