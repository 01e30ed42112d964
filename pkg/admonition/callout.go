package admonition

import (
	"strings"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// calloutRule recognizes the blockquote-callout syntax:
//
//	> [!note] Optional Title
//	> nested content
//
// The bracketed text, lower-cased, must exactly match a registered type;
// anything else is a non-match so the line falls through to the host's
// plain blockquote rule. The body is every contiguous '>'-prefixed line
// after the header, collected textually, then re-parsed against a
// synthetic line table: the host tokenizer is line-table-driven, so nested
// content must be presented as a self-consistent table, not a text slice.
func (e *Extension) calloutRule(s *mdtok.State, startLine, endLine int, silent bool) bool {
	pos := s.LineStart(startLine) + s.LineIndent(startLine)
	max := s.LineEnd(startLine)

	if pos >= max || s.Src[pos] != '>' {
		return false
	}
	pos++

	// A single space after '>' is optional.
	if pos < max && s.Src[pos] == ' ' {
		pos++
	}

	if pos+1 >= max || s.Src[pos] != '[' || s.Src[pos+1] != '!' {
		return false
	}
	pos += 2

	closing := -1
	for i := pos; i < max; i++ {
		if s.Src[i] == ']' {
			closing = i
			break
		}
	}
	if closing < 0 {
		return false
	}

	name := strings.ToLower(string(s.Src[pos:closing]))
	typ := e.registry.Get(name)
	if typ == nil {
		return false
	}

	title := strings.TrimSpace(string(s.Src[closing+1 : max]))

	if silent {
		return true
	}

	// Collect the body: contiguous '>'-prefixed lines, stripped of the
	// '>' and at most one following space. Purely textual; no parsing
	// happens until the whole body is gathered.
	var body []string
	nextLine := startLine + 1
	for ; nextLine < endLine && nextLine < len(s.Lines); nextLine++ {
		bpos := s.LineStart(nextLine) + s.LineIndent(nextLine)
		bmax := s.LineEnd(nextLine)
		if bpos >= bmax || s.Src[bpos] != '>' {
			break
		}
		body = append(body, stripCalloutPrefix(s.Src, bpos, bmax))
	}

	// Info keeps the "type title" normalization: an absent title and an
	// empty one are indistinguishable downstream.
	info := typ.Name
	if title != "" {
		info += " " + title
	}

	open := s.Push(typ.OpenKind, ">", 1)
	open.Info = info
	open.Map = [2]int{startLine, nextLine}

	reparseCalloutBody(s, body)

	s.Push(typ.CloseKind, ">", -1)

	s.Line = nextLine
	return true
}

// stripCalloutPrefix drops the leading '>' and at most one following space.
// pos must point at the '>'.
func stripCalloutPrefix(src []byte, pos, max int) string {
	pos++
	if pos < max && src[pos] == ' ' {
		pos++
	}
	if pos >= max {
		return ""
	}
	return string(src[pos:max])
}

// reparseCalloutBody joins the collected lines into a synthetic buffer,
// shadows the state's buffer and line table with it, re-enters the host
// tokenizer over the full synthetic range and restores the originals.
// Restoration is unconditional on every path; nested rules may recurse
// arbitrarily deep in between.
func reparseCalloutBody(s *mdtok.State, body []string) {
	src := []byte(strings.Join(body, "\n"))
	lines := syntheticLines(src)

	savedBuf := s.SwapBuffer(src, lines)
	savedScope := s.SaveScope()
	savedLine := s.Line

	s.ParentType = mdtok.ParentBlockquote
	s.LineMax = len(lines)
	s.BlkIndent = 0

	s.Tokenize(0, len(lines))

	s.RestoreScope(savedScope)
	s.RestoreBuffer(savedBuf)
	s.Line = savedLine
}

// syntheticLines builds a line table over an already-normalized buffer:
// the prefix stripping removed the quote markers, so every line is taken
// as-is with zero indent and zero left-trim.
func syntheticLines(src []byte) []mdtok.Line {
	lines := mdtok.BuildLines(src)
	for i := range lines {
		lines[i].Indent = 0
	}
	return lines
}
