package mdtok

// Token is the structural unit emitted by block parsing and consumed by
// rendering. Tokens form a flat, append-only stream; block structure is
// expressed through Nesting deltas rather than a tree.
type Token struct {
	// Kind identifies the token, e.g. "paragraph_open", "inline",
	// "admonition_note_open". Render rules dispatch on this string.
	Kind string

	// Nesting is +1 for an opening token, -1 for a closing token and 0
	// for a self-contained one.
	Nesting int

	// Markup holds the literal characters matched, e.g. ":::" or ">".
	Markup string

	// Info is the free text following the marker on the opening line.
	// Rendering derives the display title from it.
	Info string

	// Content is the raw text payload for self-contained tokens
	// (inline content, fenced code bodies).
	Content string

	// Map is the [first, last) source line range covered by the token.
	Map [2]int

	// Attrs is the ordered attribute bag attached by rendering helpers.
	// Only opening tokens carry attributes.
	Attrs []Attr
}

// Attr is a single rendered-output attribute, e.g. {"class", "admonition"}.
type Attr struct {
	Name  string
	Value string
}

// AttrJoin appends value to the named attribute, space-separated, creating
// the attribute when absent.
func (t *Token) AttrJoin(name, value string) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs[i].Value += " " + value
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{Name: name, Value: value})
}

// AttrGet returns the value of the named attribute, or "" when absent.
func (t *Token) AttrGet(name string) string {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			return t.Attrs[i].Value
		}
	}
	return ""
}
