package admonition

import (
	"strings"
	"unicode"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// defaultOpenRender builds the default opening renderer for a type:
//
//	<div class="admonition admonition-<type>">
//	<div class="admonition-title">[icon]Title</div>
//	<div class="admonition-content">
//
// The display title is the token's info with the leading type name
// stripped and trimmed, falling back to the capitalized type name.
func defaultOpenRender(typ *Type) mdtok.RenderFunc {
	return func(tokens []mdtok.Token, idx int) string {
		tok := &tokens[idx]
		tok.AttrJoin("class", "admonition")
		tok.AttrJoin("class", "admonition-"+typ.Name)

		var sb strings.Builder
		sb.WriteString(`<div class="` + tok.AttrGet("class") + `">`)
		sb.WriteString("\n")

		sb.WriteString(`<div class="admonition-title">`)
		if typ.Icon != "" {
			sb.WriteString(`<span class="admonition-icon">`)
			sb.WriteString(typ.Icon)
			sb.WriteString(`</span>`)
		}
		sb.WriteString(mdtok.EscapeHTML(displayTitle(tok.Info, typ.Name)))
		sb.WriteString("</div>\n")

		sb.WriteString(`<div class="admonition-content">`)
		sb.WriteString("\n")
		return sb.String()
	}
}

// defaultCloseRender closes the content container and the outer element.
func defaultCloseRender(_ *Type) mdtok.RenderFunc {
	return func([]mdtok.Token, int) string {
		return "</div>\n</div>\n"
	}
}

// displayTitle derives the rendered title from a token's info string.
func displayTitle(info, name string) string {
	title := strings.TrimSpace(info)
	if strings.HasPrefix(title, name) {
		title = strings.TrimSpace(title[len(name):])
	}
	if title == "" {
		title = capitalize(name)
	}
	return title
}

func capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
