// Package mdtok implements a line-table-driven Markdown block tokenizer.
//
// The tokenizer is deliberately small: it covers the block constructs the
// host needs (headings, fenced code, blockquotes, paragraphs) and exposes a
// rule chain that plugins extend with further block syntaxes. Parsing is a
// one-shot, whole-document pass producing a flat token stream; rendering
// walks the stream with string-keyed render rules.
package mdtok

// Parser owns the block-rule chain and the render-rule table.
// A Parser is built once, extended by plugins, and then reused across
// Parse/Render calls; it is not mutated during parsing.
type Parser struct {
	// Block is the ordered block-rule chain.
	Block *Ruler

	// Renderer maps token kinds to render rules.
	Renderer *Renderer
}

// New creates a Parser with the built-in block rules and default render
// rules installed.
func New() *Parser {
	p := &Parser{
		Block:    &Ruler{},
		Renderer: NewRenderer(),
	}

	// Built-in chain order mirrors the order constructs are probed in:
	// structural rules first, paragraph as the always-matching fallback.
	_ = p.Block.Push("heading", ruleHeading, "paragraph", "blockquote")
	_ = p.Block.Push("fence", ruleFence, "paragraph", "blockquote", "list")
	_ = p.Block.Push("blockquote", ruleBlockquote, "paragraph", "blockquote", "list")
	_ = p.Block.Push("paragraph", ruleParagraph)

	return p
}

// Parse tokenizes src in a single whole-document pass.
func (p *Parser) Parse(src []byte) []Token {
	state := NewState(src, p)
	p.tokenize(state, 0, len(state.Lines))
	return state.Tokens
}

// Render parses src and renders the resulting token stream to HTML.
func (p *Parser) Render(src []byte) string {
	return p.Renderer.Render(p.Parse(src))
}

// tokenize is the recursive block-tokenization entry point. It offers each
// line window to the rule chain in order; the first matching rule consumes
// lines by advancing state.Line. The paragraph rule matches anything, so
// every non-blank line is consumed by exactly one rule.
//
// Nested constructs re-enter tokenize through State.Tokenize with a
// strictly narrower window, which bounds the recursion by input size.
func (p *Parser) tokenize(s *State, startLine, endLine int) {
	rules := p.Block.Rules()

	line := s.SkipBlankLines(startLine)
	for line < endLine && line < len(s.Lines) {
		// A line indented less than the current block scope terminates
		// the nesting; the outer level will reconsider it.
		if s.LineIndent(line) < s.BlkIndent {
			break
		}

		s.Line = line
		for _, rule := range rules {
			if rule(s, line, endLine, false) {
				break
			}
		}

		if s.Line <= line {
			// Rules must make progress; treat a stuck cursor as a
			// consumed line rather than looping forever.
			s.Line = line + 1
		}
		line = s.SkipBlankLines(s.Line)
	}
	s.Line = line
}
