package admonition_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdcallout/pkg/admonition"
	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	ext, err := admonition.New(admonition.Options{})
	if err != nil {
		t.Fatalf("default options must be valid: %v", err)
	}

	types := ext.Registry().Types()
	expected := admonition.DefaultTypes()
	if len(types) != len(expected) {
		t.Fatalf("expected %d default types, got %d", len(expected), len(types))
	}
	for i, typ := range types {
		if typ.Name != expected[i] {
			t.Errorf("type %d: expected %q, got %q", i, expected[i], typ.Name)
		}
		if typ.OpenKind != "admonition_"+expected[i]+"_open" {
			t.Errorf("type %d: unexpected open kind %q", i, typ.OpenKind)
		}
	}
	if ext.Marker() != admonition.DefaultMarker {
		t.Errorf("expected default marker, got %q", ext.Marker())
	}
}

func TestNewConfigurationErrors(t *testing.T) {
	t.Parallel()

	off := false
	render := func([]mdtok.Token, int) string { return "" }

	tests := []struct {
		name     string
		opts     admonition.Options
		expected error
	}{
		{
			name:     "empty type name",
			opts:     admonition.Options{Types: []string{"note", ""}},
			expected: admonition.ErrInvalidType,
		},
		{
			name:     "uppercase type name",
			opts:     admonition.Options{Types: []string{"Note"}},
			expected: admonition.ErrInvalidType,
		},
		{
			name:     "duplicate type",
			opts:     admonition.Options{Types: []string{"note", "note"}},
			expected: admonition.ErrDuplicateType,
		},
		{
			name:     "icon for unknown type",
			opts:     admonition.Options{Icons: map[string]string{"bogus": "x"}},
			expected: admonition.ErrUnknownType,
		},
		{
			name:     "whitespace marker",
			opts:     admonition.Options{Marker: ": "},
			expected: admonition.ErrInvalidMarker,
		},
		{
			name: "open-only render pair",
			opts: admonition.Options{
				Renders: map[string]admonition.RenderPair{"note": {Open: render}},
			},
			expected: admonition.ErrAsymmetricRender,
		},
		{
			name: "close-only render pair",
			opts: admonition.Options{
				Renders: map[string]admonition.RenderPair{"note": {Close: render}},
			},
			expected: admonition.ErrAsymmetricRender,
		},
		{
			name: "render pair for unknown type",
			opts: admonition.Options{
				Renders: map[string]admonition.RenderPair{"bogus": {Open: render, Close: render}},
			},
			expected: admonition.ErrUnknownType,
		},
		{
			name: "validator for unknown type",
			opts: admonition.Options{
				Validators: map[string]admonition.Validator{"bogus": func(_, _ string) bool { return true }},
			},
			expected: admonition.ErrUnknownType,
		},
		{
			name: "both styles disabled",
			opts: admonition.Options{
				ObsidianStyle:   &off,
				DocusaurusStyle: &off,
			},
			expected: admonition.ErrNoStyleEnabled,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := admonition.New(testCase.opts)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !errors.Is(err, testCase.expected) {
				t.Errorf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestAttachIdempotent(t *testing.T) {
	t.Parallel()

	p := mdtok.New()
	ext := admonition.MustNew(admonition.Options{})

	if err := ext.Attach(p); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}
	if err := ext.Attach(p); err != nil {
		t.Fatalf("second attach must be a no-op, got %v", err)
	}

	tokens := p.Parse([]byte(":::note\nx\n:::\n"))
	opens := 0
	for _, tok := range tokens {
		if tok.Kind == "admonition_note_open" {
			opens++
		}
	}
	if opens != 1 {
		t.Errorf("double attach must not duplicate rules: %d opens", opens)
	}
}

func TestAttachFirstRegistrationWins(t *testing.T) {
	t.Parallel()

	p := mdtok.New()

	first := admonition.MustNew(admonition.Options{
		Renders: map[string]admonition.RenderPair{
			"note": {
				Open:  func([]mdtok.Token, int) string { return "<first>" },
				Close: func([]mdtok.Token, int) string { return "</first>" },
			},
		},
	})
	second := admonition.MustNew(admonition.Options{
		Renders: map[string]admonition.RenderPair{
			"note": {
				Open:  func([]mdtok.Token, int) string { return "<second>" },
				Close: func([]mdtok.Token, int) string { return "</second>" },
			},
		},
	})

	if err := first.Attach(p); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := second.Attach(p); err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}

	got := p.Render([]byte(":::note\n:::\n"))
	if got != "<first></first>" {
		t.Errorf("first registered renderer must win, got %q", got)
	}
}

func TestMustNewPanicsOnBadConfig(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid configuration")
		}
	}()
	admonition.MustNew(admonition.Options{Types: []string{"BAD"}})
}
