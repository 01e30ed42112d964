package goldmarkadm

import "testing"

func TestParseCalloutHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		typeName string
		title    string
		ok       bool
	}{
		{name: "type and title", header: "[!note] Hello", typeName: "note", title: "Hello", ok: true},
		{name: "type only", header: "[!tip]", typeName: "tip", title: "", ok: true},
		{name: "uppercase lowered", header: "[!WARNING] X", typeName: "warning", title: "X", ok: true},
		{name: "trailing newline", header: "[!note] T\n", typeName: "note", title: "T", ok: true},
		{name: "no bang", header: "[note] X", ok: false},
		{name: "no closing bracket", header: "[!note X", ok: false},
		{name: "empty name", header: "[!] X", ok: false},
		{name: "plain text", header: "hello", ok: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			name, title, ok := parseCalloutHeader(testCase.header)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got %v", testCase.ok, ok)
			}
			if !ok {
				return
			}
			if name != testCase.typeName {
				t.Errorf("expected type %q, got %q", testCase.typeName, name)
			}
			if title != testCase.title {
				t.Errorf("expected title %q, got %q", testCase.title, title)
			}
		})
	}
}

func TestMarkerRepsGoldmark(t *testing.T) {
	t.Parallel()

	if got := markerReps([]byte(":::note"), ":"); got != 3 {
		t.Errorf("expected 3 repetitions, got %d", got)
	}
	if got := markerReps([]byte("::x"), ":"); got != 2 {
		t.Errorf("expected 2 repetitions, got %d", got)
	}
	if got := markerReps([]byte("-+-+-"), "-+"); got != 2 {
		t.Errorf("partial repetition must round down, got %d", got)
	}
}
