package admonition_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdcallout/pkg/admonition"
	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// newParser builds a host parser with the admonition extension attached.
func newParser(t *testing.T, opts admonition.Options) *mdtok.Parser {
	t.Helper()

	p := mdtok.New()
	ext, err := admonition.New(opts)
	if err != nil {
		t.Fatalf("extension config rejected: %v", err)
	}
	if err := ext.Attach(p); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	return p
}

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
			t.Fatalf("token %d: expected %q, got %q (stream %v)", i, expected[i], got[i], got)
		}
	}
}

func TestFenceBasicBlock(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte(":::note\nbody\n:::\nafter\n"))

	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
		"paragraph_open", "inline", "paragraph_close",
	})
	if tokens[0].Markup != ":::" {
		t.Errorf("expected markup %q, got %q", ":::", tokens[0].Markup)
	}
	if tokens[0].Info != "note" {
		t.Errorf("expected info %q, got %q", "note", tokens[0].Info)
	}
	if tokens[4].Markup != ":::" {
		t.Errorf("close token must carry the same markup, got %q", tokens[4].Markup)
	}
}

func TestFenceTitleKeptInInfo(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte("::: warning Achtung baby\ncontent\n:::\n"))

	if tokens[0].Kind != "admonition_warning_open" {
		t.Fatalf("expected warning open, got %q", tokens[0].Kind)
	}
	if tokens[0].Info != " warning Achtung baby" {
		t.Errorf("info must keep the raw text after the marker run, got %q", tokens[0].Info)
	}
}

func TestFenceMarkerCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		open  bool
	}{
		{name: "three markers open", input: ":::note\nx\n:::\n", open: true},
		{name: "five markers open", input: ":::::note\nx\n:::::\n", open: true},
		{name: "two markers never open", input: "::note\nx\n::\n", open: false},
		{name: "longer close accepted", input: ":::note\nx\n::::::\n", open: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tokens := newParser(t, admonition.Options{}).Parse([]byte(testCase.input))
			opened := len(tokens) > 0 && tokens[0].Kind == "admonition_note_open"
			if opened != testCase.open {
				t.Errorf("expected open=%v, stream %v", testCase.open, kinds(tokens))
			}
		})
	}
}

func TestFenceShorterRunNeverCloses(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte("::::note\nbody\n:::\n::::\n"))

	// The three-marker line is interior content, not a close fence.
	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
	})
	if !strings.Contains(tokens[2].Content, ":::") {
		t.Errorf("short marker run must stay in the interior, got %q", tokens[2].Content)
	}
}

func TestFenceAutoCloseAtEndOfInput(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte(":::note\nbody"))

	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
	})
}

func TestFenceIndentSensitivity(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	// The close candidate is out-dented relative to the opener, so the
	// block auto-closes and the line falls back to the outer scope.
	tokens := p.Parse([]byte("  :::note\n  body\noutside\n"))

	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
		"paragraph_open", "inline", "paragraph_close",
	})
	if tokens[6].Content != "outside" {
		t.Errorf("out-dented line belongs outside the block, got %q", tokens[6].Content)
	}
}

func TestFenceOverIndentedRunIsContent(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte(":::note\nbody\n   :::\n:::\n"))

	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
	})
	if tokens[2].Content != "body\n:::" {
		t.Errorf("indented marker run must be continuation content, got %q", tokens[2].Content)
	}
}

func TestFenceNesting(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte("::::note\n:::tip\ninner\n:::\n::::\n"))

	assertKinds(t, tokens, []string{
		"admonition_note_open",
		"admonition_tip_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_tip_close",
		"admonition_note_close",
	})
}

func TestFenceUnknownTypeIsNonMatch(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte(":::bogus\nx\n:::\n"))

	for _, tok := range tokens {
		if strings.HasPrefix(tok.Kind, "admonition_") {
			t.Fatalf("unknown type must not produce admonition tokens, got %v", kinds(tokens))
		}
	}
}

func TestFenceCustomMarker(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{Marker: "!"})
	tokens := p.Parse([]byte("!!!danger\nrun\n!!!\n"))

	assertKinds(t, tokens, []string{
		"admonition_danger_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_danger_close",
	})
}

func TestFenceMultiCharMarker(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{Marker: "-+"})
	tokens := p.Parse([]byte("-+-+-+info\ntext\n-+-+-+\n"))

	assertKinds(t, tokens, []string{
		"admonition_info_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_info_close",
	})
	if tokens[0].Markup != "-+-+-+" {
		t.Errorf("expected markup for three repetitions, got %q", tokens[0].Markup)
	}
}

func TestFenceMultiCharMarkerPartialRepetition(t *testing.T) {
	t.Parallel()

	// Two full repetitions plus a partial one stay below the minimum.
	p := newParser(t, admonition.Options{Marker: "-+"})
	tokens := p.Parse([]byte("-+-+-info\n"))

	for _, tok := range tokens {
		if strings.HasPrefix(tok.Kind, "admonition_") {
			t.Fatalf("partial repetition must not open a block, got %v", kinds(tokens))
		}
	}
}

func TestFenceTerminatesParagraph(t *testing.T) {
	t.Parallel()

	p := newParser(t, admonition.Options{})
	tokens := p.Parse([]byte("text\n:::note\nbody\n:::\n"))

	assertKinds(t, tokens, []string{
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_open",
		"paragraph_open", "inline", "paragraph_close",
		"admonition_note_close",
	})
	if tokens[1].Content != "text" {
		t.Errorf("paragraph must stop before the fence, got %q", tokens[1].Content)
	}
}

func TestFenceCustomValidator(t *testing.T) {
	t.Parallel()

	// Accepts any params for the note type, regardless of first word.
	opts := admonition.Options{
		Types: []string{"note"},
		Validators: map[string]admonition.Validator{
			"note": func(params, _ string) bool {
				return strings.Contains(params, "@note")
			},
		},
	}
	p := newParser(t, opts)

	tokens := p.Parse([]byte("::: @note custom\nx\n:::\n"))
	if tokens[0].Kind != "admonition_note_open" {
		t.Fatalf("custom validator must decide the match, got %v", kinds(tokens))
	}

	tokens = p.Parse([]byte(":::note plain\nx\n:::\n"))
	for _, tok := range tokens {
		if strings.HasPrefix(tok.Kind, "admonition_") {
			t.Fatalf("custom validator rejected params must be a non-match, got %v", kinds(tokens))
		}
	}
}

func TestBalancedTokensProperty(t *testing.T) {
	t.Parallel()

	inputs := []string{
		":::note\nbody\n:::\n",
		":::note\nbody",
		"::::note\n:::tip\nx\n:::\n::::\n",
		"> [!note] T\n> a\n> b\nc\n",
		":::warning\n> [!tip] nested\n> q\n:::\n",
		"text\n:::danger\nx\n",
		"  :::note\n  a\nb\n",
		"> [!info]\n",
	}

	p := newParser(t, admonition.Options{})
	for _, input := range inputs {
		tokens := p.Parse([]byte(input))

		depth := 0
		perType := map[string]int{}
		for i, tok := range tokens {
			depth += tok.Nesting
			if depth < 0 {
				t.Fatalf("input %q: depth negative at token %d", input, i)
			}
			if strings.HasPrefix(tok.Kind, "admonition_") {
				perType[tok.Kind] += 1
			}
		}
		if depth != 0 {
			t.Errorf("input %q: unbalanced stream, final depth %d", input, depth)
		}
		for kind, n := range perType {
			if strings.HasSuffix(kind, "_open") {
				closeKind := strings.TrimSuffix(kind, "_open") + "_close"
				if perType[closeKind] != n {
					t.Errorf("input %q: %d %s vs %d %s", input, n, kind, perType[closeKind], closeKind)
				}
			}
		}
	}
}
