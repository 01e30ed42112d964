package goldmarkadm

import (
	"strings"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdcallout/pkg/admonition"
)

// fencedParser recognizes the fenced-container syntax (":::note Title")
// as a goldmark block parser. The structure follows goldmark's own fenced
// code block parser, adapted to a container block with children.
type fencedParser struct {
	registry *admonition.Registry
	marker   string
}

func newFencedParser(registry *admonition.Registry, marker string) parser.BlockParser {
	return &fencedParser{registry: registry, marker: marker}
}

// Trigger implements parser.BlockParser.
func (p *fencedParser) Trigger() []byte {
	return []byte{p.marker[0]}
}

// Open implements parser.BlockParser.
func (p *fencedParser) Open(_ gast.Node, reader text.Reader, pc parser.Context) (gast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || line[pos] != p.marker[0] {
		return nil, parser.NoChildren
	}

	reps := markerReps(line[pos:], p.marker)
	if reps < 3 {
		return nil, parser.NoChildren
	}

	params := strings.TrimRight(string(line[pos+reps*len(p.marker):]), "\r\n")
	typ := p.registry.Match(params, strings.Repeat(p.marker, reps))
	if typ == nil {
		return nil, parser.NoChildren
	}

	title := strings.TrimSpace(params)
	title = strings.TrimSpace(strings.TrimPrefix(title, typ.Name))

	node := NewAdmonition(typ.Name, title, true)
	node.fenceLength = reps

	reader.Advance(segment.Len() - 1)
	return node, parser.HasChildren
}

// Continue implements parser.BlockParser.
func (p *fencedParser) Continue(node gast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, segment := reader.PeekLine()
	adm := node.(*Admonition)

	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w < 4 && pos < len(line) && line[pos] == p.marker[0] {
		reps := markerReps(line[pos:], p.marker)
		rest := pos + reps*len(p.marker)
		if reps >= adm.fenceLength && util.IsBlank(line[rest:]) {
			// Consume the closing fence line.
			newline := 1
			if line[len(line)-1] != '\n' {
				newline = 0
			}
			reader.Advance(segment.Stop - segment.Start - newline - segment.Padding)
			return parser.Close
		}
	}

	return parser.Continue | parser.HasChildren
}

// Close implements parser.BlockParser.
func (p *fencedParser) Close(_ gast.Node, _ text.Reader, _ parser.Context) {}

// CanInterruptParagraph implements parser.BlockParser.
func (p *fencedParser) CanInterruptParagraph() bool {
	return true
}

// CanAcceptIndentedLine implements parser.BlockParser.
func (p *fencedParser) CanAcceptIndentedLine() bool {
	return false
}

// markerReps counts complete repetitions of marker at the start of line.
func markerReps(line []byte, marker string) int {
	pos := 0
	for pos < len(line) && line[pos] == marker[pos%len(marker)] {
		pos++
	}
	return pos / len(marker)
}
