package admonition

import (
	"strings"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// fenceRule recognizes the fenced-container syntax:
//
//	::: note Optional Title
//	nested content
//	:::
//
// The opening line needs at least minMarkerCount full marker repetitions
// and a validator that accepts the remaining text. The closing line needs
// at least as many repetitions as the opener, only whitespace after them,
// and the opener's exact indent. A block without a closing line auto-closes
// at the enclosing scope boundary; that is a recovery policy, not an error.
func (e *Extension) fenceRule(s *mdtok.State, startLine, endLine int, silent bool) bool {
	marker := e.marker
	markerLen := len(marker)

	pos := s.LineStart(startLine) + s.LineIndent(startLine)
	max := s.LineEnd(startLine)

	// Cheap first-character check before the full run scan.
	if pos >= max || s.Src[pos] != marker[0] {
		return false
	}

	markerCount := markerRepetitions(s.Src, pos, max, marker)
	if markerCount < minMarkerCount {
		return false
	}

	runEnd := pos + markerCount*markerLen
	markup := strings.Repeat(marker, markerCount)
	params := string(s.Src[runEnd:max])

	typ := e.registry.Match(params, markup)
	if typ == nil {
		// Not ours; the host tries the remaining rules in the chain.
		return false
	}

	if silent {
		return true
	}

	openIndent := s.LineIndent(startLine)

	// Search for the closing fence. First valid line wins; the scan is
	// not required to find the longest possible match.
	nextLine := startLine
	haveEndMarker := false
	for {
		nextLine++
		if nextLine >= endLine {
			// Unclosed block: auto-close at the scope boundary.
			break
		}

		if s.IsBlank(nextLine) {
			continue
		}

		indent := s.LineIndent(nextLine)
		if indent < openIndent {
			// Out-dented non-blank line ends the scan; the block
			// auto-closes here and the line is left to the outer
			// scope.
			break
		}
		if indent > openIndent {
			// Indented lines are continuation content, never a
			// close fence.
			continue
		}

		pos = s.LineStart(nextLine) + indent
		max = s.LineEnd(nextLine)

		if s.Src[pos] != marker[0] {
			continue
		}

		closeCount := markerRepetitions(s.Src, pos, max, marker)
		if closeCount < markerCount {
			continue
		}

		rest := pos + closeCount*markerLen
		if !whitespaceOnly(s.Src, rest, max) {
			continue
		}

		haveEndMarker = true
		break
	}

	// Narrow the scope for the interior parse: nested tokenization must
	// not read past the close line, and interior content is parsed
	// relative to the opener's indent.
	scope := s.SaveScope()
	s.ParentType = mdtok.ParentContainer
	s.LineMax = nextLine
	s.BlkIndent = openIndent

	open := s.Push(typ.OpenKind, markup, 1)
	open.Info = params
	open.Map = [2]int{startLine, nextLine}

	s.Tokenize(startLine+1, nextLine)

	s.Push(typ.CloseKind, markup, -1)

	s.RestoreScope(scope)

	// The close line is consumed only when a real close fence was found;
	// on auto-close the boundary line belongs to the outer scope.
	s.Line = nextLine
	if haveEndMarker {
		s.Line++
	}
	return true
}

func whitespaceOnly(src []byte, pos, max int) bool {
	for ; pos < max; pos++ {
		if src[pos] != ' ' && src[pos] != '\t' {
			return false
		}
	}
	return true
}
