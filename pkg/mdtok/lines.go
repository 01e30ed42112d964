package mdtok

// Line describes one source line as a window into the shared source buffer.
type Line struct {
	// Start is the byte offset of the first character of the line (inclusive).
	Start int

	// End is the byte offset of the line's newline, or len(src) for the
	// final line (exclusive; the newline itself is not part of the window).
	End int

	// Indent is the width of the leading whitespace. Tabs count as one
	// column; block structure in this package is space-indented.
	Indent int
}

// BuildLines constructs the line table for content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// Offsets are monotonically non-decreasing across lines and Indent >= 0.
func BuildLines(content []byte) []Line {
	if len(content) == 0 {
		return []Line{}
	}

	var lines []Line
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			end := idx
			if idx > 0 && content[idx-1] == '\r' {
				end = idx - 1
			}
			lines = append(lines, Line{
				Start:  lineStart,
				End:    end,
				Indent: measureIndent(content, lineStart, end),
			})
			lineStart = idx + 1
		}
	}

	// Last line may not carry a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, Line{
			Start:  lineStart,
			End:    len(content),
			Indent: measureIndent(content, lineStart, len(content)),
		})
	}

	return lines
}

// measureIndent counts leading whitespace columns in content[start:end].
func measureIndent(content []byte, start, end int) int {
	indent := 0
	for pos := start; pos < end; pos++ {
		if content[pos] != ' ' && content[pos] != '\t' {
			break
		}
		indent++
	}
	return indent
}
