package mdtok

import "strings"

// ruleHeading recognizes ATX headings: 1-6 '#' characters followed by
// whitespace or end of line.
func ruleHeading(s *State, startLine, endLine int, silent bool) bool {
	pos := s.LineStart(startLine) + s.LineIndent(startLine)
	max := s.LineEnd(startLine)

	if pos >= max || s.Src[pos] != '#' {
		return false
	}

	level := 0
	for pos < max && s.Src[pos] == '#' {
		pos++
		level++
	}
	if level > 6 {
		return false
	}
	if pos < max && s.Src[pos] != ' ' && s.Src[pos] != '\t' {
		return false
	}

	if silent {
		return true
	}

	markup := strings.Repeat("#", level)
	content := strings.TrimSpace(string(s.Src[pos:max]))

	tok := s.Push("heading_open", markup, 1)
	tok.Map = [2]int{startLine, startLine + 1}

	inline := s.Push("inline", "", 0)
	inline.Content = content
	inline.Map = [2]int{startLine, startLine + 1}

	s.Push("heading_close", markup, -1)

	s.Line = startLine + 1
	return true
}

// ruleFence recognizes fenced code blocks opened by at least three backticks
// or tildes. An unterminated fence runs to the end of the enclosing scope.
func ruleFence(s *State, startLine, endLine int, silent bool) bool {
	pos := s.LineStart(startLine) + s.LineIndent(startLine)
	max := s.LineEnd(startLine)

	if pos >= max {
		return false
	}
	markerChar := s.Src[pos]
	if markerChar != '`' && markerChar != '~' {
		return false
	}

	count := 0
	for pos < max && s.Src[pos] == markerChar {
		pos++
		count++
	}
	if count < 3 {
		return false
	}

	info := strings.TrimSpace(string(s.Src[pos:max]))
	if markerChar == '`' && strings.ContainsRune(info, '`') {
		return false
	}

	if silent {
		return true
	}

	// Search for the closing fence: same character, at least as many
	// repetitions, nothing but whitespace after.
	nextLine := startLine
	haveEndMarker := false
	for {
		nextLine++
		if nextLine >= endLine {
			break
		}

		pos = s.LineStart(nextLine) + s.LineIndent(nextLine)
		max = s.LineEnd(nextLine)

		if pos >= max {
			continue
		}
		if s.Src[pos] != markerChar {
			continue
		}

		closeCount := 0
		for pos < max && s.Src[pos] == markerChar {
			pos++
			closeCount++
		}
		if closeCount < count {
			continue
		}
		if !onlySpacesUntil(s.Src, pos, max) {
			continue
		}

		haveEndMarker = true
		break
	}

	var body strings.Builder
	for line := startLine + 1; line < nextLine; line++ {
		body.WriteString(string(s.Src[s.LineStart(line):s.LineEnd(line)]))
		body.WriteByte('\n')
	}

	tok := s.Push("fence", strings.Repeat(string(markerChar), count), 0)
	tok.Info = info
	tok.Content = body.String()
	tok.Map = [2]int{startLine, nextLine}

	s.Line = nextLine
	if haveEndMarker {
		s.Line++
	}
	return true
}

// ruleBlockquote recognizes '>'-prefixed blockquotes. All contiguous
// '>'-prefixed lines are collected, stripped of their prefix and re-parsed
// against a synthetic line table so nested block constructs work.
func ruleBlockquote(s *State, startLine, endLine int, silent bool) bool {
	pos := s.LineStart(startLine) + s.LineIndent(startLine)
	max := s.LineEnd(startLine)

	if pos >= max || s.Src[pos] != '>' {
		return false
	}
	if silent {
		return true
	}

	var body []string
	lastLine := startLine
	for line := startLine; line < endLine && line < len(s.Lines); line++ {
		pos = s.LineStart(line) + s.LineIndent(line)
		max = s.LineEnd(line)
		if pos >= max || s.Src[pos] != '>' {
			break
		}
		body = append(body, stripQuotePrefix(s.Src, pos, max))
		lastLine = line
	}

	open := s.Push("blockquote_open", ">", 1)
	open.Map = [2]int{startLine, lastLine + 1}

	reparseSynthetic(s, strings.Join(body, "\n"), ParentBlockquote)

	s.Push("blockquote_close", ">", -1)

	s.Line = lastLine + 1
	return true
}

// stripQuotePrefix drops the leading '>' and at most one following space
// from src[pos:max]. pos must point at the '>'.
func stripQuotePrefix(src []byte, pos, max int) string {
	pos++
	if pos < max && src[pos] == ' ' {
		pos++
	}
	if pos >= max {
		return ""
	}
	return string(src[pos:max])
}

// reparseSynthetic tokenizes content against a synthetic buffer and line
// table, shadowing the real ones for the duration of the call. The saved
// buffer, scope fields and cursor are restored unconditionally; the
// synthetic table is built by BuildLines so every line has its own indent
// but the scope floor is reset to zero.
func reparseSynthetic(s *State, content string, parent ParentKind) {
	src := []byte(content)
	lines := BuildLines(src)

	savedBuf := s.SwapBuffer(src, lines)
	savedScope := s.SaveScope()
	savedLine := s.Line

	s.ParentType = parent
	s.LineMax = len(lines)
	s.BlkIndent = 0

	s.Tokenize(0, len(lines))

	s.RestoreScope(savedScope)
	s.RestoreBuffer(savedBuf)
	s.Line = savedLine
}

// ruleParagraph is the fallback rule: it always matches and consumes lines
// until a blank line, the scope boundary, or a line where one of the
// paragraph-terminating rules reports a silent match.
func ruleParagraph(s *State, startLine, endLine int, _ bool) bool {
	terminators := s.parser.Block.RulesForAlt("paragraph")

	oldParent := s.ParentType
	s.ParentType = ParentParagraph

	nextLine := startLine + 1
	for ; nextLine < endLine && !s.IsBlank(nextLine); nextLine++ {
		if s.LineIndent(nextLine) < s.BlkIndent {
			break
		}

		terminated := false
		for _, rule := range terminators {
			if rule(s, nextLine, endLine, true) {
				terminated = true
				break
			}
		}
		if terminated {
			break
		}
	}

	var parts []string
	for line := startLine; line < nextLine; line++ {
		parts = append(parts, strings.TrimSpace(s.LineText(line)))
	}

	s.ParentType = oldParent

	open := s.Push("paragraph_open", "", 1)
	open.Map = [2]int{startLine, nextLine}

	inline := s.Push("inline", "", 0)
	inline.Content = strings.Join(parts, "\n")
	inline.Map = [2]int{startLine, nextLine}

	s.Push("paragraph_close", "", -1)

	s.Line = nextLine
	return true
}

// onlySpacesUntil reports whether src[pos:max] is whitespace-only.
func onlySpacesUntil(src []byte, pos, max int) bool {
	for ; pos < max; pos++ {
		if src[pos] != ' ' && src[pos] != '\t' {
			return false
		}
	}
	return true
}
