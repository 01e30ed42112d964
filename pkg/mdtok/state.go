package mdtok

// ParentKind classifies the immediately enclosing block during tokenization.
// Rules consult it to decide whether certain constructs may interrupt their
// surroundings.
type ParentKind string

const (
	ParentRoot       ParentKind = "root"
	ParentParagraph  ParentKind = "paragraph"
	ParentBlockquote ParentKind = "blockquote"
	ParentContainer  ParentKind = "container"
)

// State is the mutable per-parse context threaded through every block rule
// and the recursive tokenizer entry point. A single State is created per
// top-level Parse call; rules that mutate scope fields or substitute the
// source buffer must restore the prior values before returning.
type State struct {
	// Src is the source buffer the line table indexes into. Rules that
	// re-parse synthesized content swap it together with Lines and must
	// swap back.
	Src []byte

	// Lines is the line table over Src.
	Lines []Line

	// Line is the cursor: the next line to be consumed. Every matching
	// rule must advance it.
	Line int

	// LineMax bounds how far the current nesting may read.
	LineMax int

	// BlkIndent is the minimum indent required for continuation lines of
	// the current block scope.
	BlkIndent int

	// ParentType classifies the enclosing block.
	ParentType ParentKind

	// Tokens is the append-only output stream.
	Tokens []Token

	parser *Parser
}

// NewState creates a parse state over src bound to p.
func NewState(src []byte, p *Parser) *State {
	lines := BuildLines(src)
	return &State{
		Src:        src,
		Lines:      lines,
		LineMax:    len(lines),
		ParentType: ParentRoot,
		parser:     p,
	}
}

// LineStart returns the start offset of line i, or 0 when i is out of range.
func (s *State) LineStart(i int) int {
	if i < 0 || i >= len(s.Lines) {
		return 0
	}
	return s.Lines[i].Start
}

// LineEnd returns the end offset of line i, or 0 when i is out of range.
func (s *State) LineEnd(i int) int {
	if i < 0 || i >= len(s.Lines) {
		return 0
	}
	return s.Lines[i].End
}

// LineIndent returns the indent width of line i, or 0 when i is out of range.
func (s *State) LineIndent(i int) int {
	if i < 0 || i >= len(s.Lines) {
		return 0
	}
	return s.Lines[i].Indent
}

// IsBlank reports whether line i contains nothing but whitespace.
func (s *State) IsBlank(i int) bool {
	return s.LineStart(i)+s.LineIndent(i) >= s.LineEnd(i)
}

// SkipBlankLines returns the first line index >= from that is not blank,
// clamped to the line count.
func (s *State) SkipBlankLines(from int) int {
	for from < len(s.Lines) && s.IsBlank(from) {
		from++
	}
	return from
}

// LineText returns the text of line i with indentation stripped.
func (s *State) LineText(i int) string {
	start := s.LineStart(i) + s.LineIndent(i)
	end := s.LineEnd(i)
	if start >= end {
		return ""
	}
	return string(s.Src[start:end])
}

// Push appends a token to the stream and returns a pointer to it.
// The token's Map defaults to the current cursor line.
func (s *State) Push(kind, markup string, nesting int) *Token {
	s.Tokens = append(s.Tokens, Token{
		Kind:    kind,
		Markup:  markup,
		Nesting: nesting,
		Map:     [2]int{s.Line, s.Line + 1},
	})
	return &s.Tokens[len(s.Tokens)-1]
}

// Scope is a snapshot of the scope fields a nesting rule mutates.
// Taken before narrowing the parse window, restored after the interior
// tokenization returns.
type Scope struct {
	ParentType ParentKind
	LineMax    int
	BlkIndent  int
}

// SaveScope snapshots the current scope fields.
func (s *State) SaveScope() Scope {
	return Scope{
		ParentType: s.ParentType,
		LineMax:    s.LineMax,
		BlkIndent:  s.BlkIndent,
	}
}

// RestoreScope restores scope fields from a snapshot.
func (s *State) RestoreScope(sc Scope) {
	s.ParentType = sc.ParentType
	s.LineMax = sc.LineMax
	s.BlkIndent = sc.BlkIndent
}

// Buffer is a snapshot of the source buffer and line table, taken by rules
// that re-parse synthesized content against a substitute buffer.
type Buffer struct {
	Src   []byte
	Lines []Line
}

// SwapBuffer substitutes the source buffer and line table, returning the
// originals. The caller must restore them with RestoreBuffer on every path.
func (s *State) SwapBuffer(src []byte, lines []Line) Buffer {
	saved := Buffer{Src: s.Src, Lines: s.Lines}
	s.Src = src
	s.Lines = lines
	return saved
}

// RestoreBuffer reinstates a buffer snapshot taken by SwapBuffer.
func (s *State) RestoreBuffer(b Buffer) {
	s.Src = b.Src
	s.Lines = b.Lines
}

// Tokenize recursively invokes the host block tokenizer over
// [startLine, endLine). Rules call it to parse their interior content after
// narrowing the scope fields.
func (s *State) Tokenize(startLine, endLine int) {
	s.parser.tokenize(s, startLine, endLine)
}
