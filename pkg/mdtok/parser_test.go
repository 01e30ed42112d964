package mdtok_test

import (
	"testing"

	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// kinds extracts the token kind sequence for compact comparison.
func kinds(tokens []mdtok.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, tokens []mdtok.Token, expected []string) {
	t.Helper()

	got := kinds(tokens)
	if len(got) != len(expected) {
		t.Fatalf("expected kinds %v, got %v", expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("token %d: expected kind %q, got %q (stream %v)", i, expected[i], got[i], got)
		}
	}
}

// assertBalanced checks the balanced-parenthesis invariant over the stream.
func assertBalanced(t *testing.T, tokens []mdtok.Token) {
	t.Helper()

	depth := 0
	for i, tok := range tokens {
		depth += tok.Nesting
		if depth < 0 {
			t.Fatalf("token %d (%s): nesting depth went negative", i, tok.Kind)
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced stream: final depth %d", depth)
	}
}

func TestParseParagraph(t *testing.T) {
	t.Parallel()

	p := mdtok.New()
	tokens := p.Parse([]byte("hello\nworld\n"))

	assertKinds(t, tokens, []string{"paragraph_open", "inline", "paragraph_close"})
	if tokens[1].Content != "hello\nworld" {
		t.Errorf("expected joined paragraph content, got %q", tokens[1].Content)
	}
	assertBalanced(t, tokens)
}

func TestParseBlankLinesSplitParagraphs(t *testing.T) {
	t.Parallel()

	p := mdtok.New()
	tokens := p.Parse([]byte("a\n\nb\n"))

	assertKinds(t, tokens, []string{
		"paragraph_open", "inline", "paragraph_close",
		"paragraph_open", "inline", "paragraph_close",
	})
	if tokens[1].Content != "a" || tokens[4].Content != "b" {
		t.Errorf("unexpected paragraph contents: %q, %q", tokens[1].Content, tokens[4].Content)
	}
}

func TestParseHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		markup  string
		content string
	}{
		{name: "h1", input: "# Title\n", markup: "#", content: "Title"},
		{name: "h3", input: "### Deep\n", markup: "###", content: "Deep"},
		{name: "h6", input: "###### Bottom\n", markup: "######", content: "Bottom"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tokens := mdtok.New().Parse([]byte(testCase.input))
			assertKinds(t, tokens, []string{"heading_open", "inline", "heading_close"})
			if tokens[0].Markup != testCase.markup {
				t.Errorf("expected markup %q, got %q", testCase.markup, tokens[0].Markup)
			}
			if tokens[1].Content != testCase.content {
				t.Errorf("expected content %q, got %q", testCase.content, tokens[1].Content)
			}
		})
	}
}

func TestParseHeadingRejectsSevenHashes(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse([]byte("####### nope\n"))
	assertKinds(t, tokens, []string{"paragraph_open", "inline", "paragraph_close"})
}

func TestParseFence(t *testing.T) {
	t.Parallel()

	p := mdtok.New()
	tokens := p.Parse([]byte("```go\nx := 1\n```\nafter\n"))

	assertKinds(t, tokens, []string{"fence", "paragraph_open", "inline", "paragraph_close"})
	if tokens[0].Info != "go" {
		t.Errorf("expected info %q, got %q", "go", tokens[0].Info)
	}
	if tokens[0].Content != "x := 1\n" {
		t.Errorf("expected fence content %q, got %q", "x := 1\n", tokens[0].Content)
	}
}

func TestParseFenceUnterminated(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse([]byte("```\nbody\nmore"))

	assertKinds(t, tokens, []string{"fence"})
	if tokens[0].Content != "body\nmore\n" {
		t.Errorf("expected fence to swallow to end of input, got %q", tokens[0].Content)
	}
}

func TestParseFenceShortCloseDoesNotClose(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse([]byte("````\ncode\n```\n````\n"))

	assertKinds(t, tokens, []string{"fence"})
	if tokens[0].Content != "code\n```\n" {
		t.Errorf("three backticks must not close a four-backtick fence, got %q", tokens[0].Content)
	}
}

func TestParseBlockquote(t *testing.T) {
	t.Parallel()

	p := mdtok.New()
	tokens := p.Parse([]byte("> a\n> b\nc\n"))

	assertKinds(t, tokens, []string{
		"blockquote_open",
		"paragraph_open", "inline", "paragraph_close",
		"blockquote_close",
		"paragraph_open", "inline", "paragraph_close",
	})
	if tokens[2].Content != "a\nb" {
		t.Errorf("expected quoted paragraph %q, got %q", "a\nb", tokens[2].Content)
	}
	if tokens[6].Content != "c" {
		t.Errorf("expected trailing paragraph %q, got %q", "c", tokens[6].Content)
	}
	assertBalanced(t, tokens)
}

func TestParseBlockquoteNestedConstructs(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse([]byte("> # Quoted heading\n> text\n"))

	assertKinds(t, tokens, []string{
		"blockquote_open",
		"heading_open", "inline", "heading_close",
		"paragraph_open", "inline", "paragraph_close",
		"blockquote_close",
	})
	assertBalanced(t, tokens)
}

func TestParagraphTerminatedByBlockConstruct(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse([]byte("text\n# Heading\n"))

	assertKinds(t, tokens, []string{
		"paragraph_open", "inline", "paragraph_close",
		"heading_open", "inline", "heading_close",
	})
	if tokens[1].Content != "text" {
		t.Errorf("paragraph must stop before the heading, got %q", tokens[1].Content)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	tokens := mdtok.New().Parse(nil)
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", kinds(tokens))
	}
}
