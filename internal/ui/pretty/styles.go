// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token table components
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	OpenToken      lipgloss.Style
	CloseToken     lipgloss.Style
	InlineToken    lipgloss.Style
	FlatToken      lipgloss.Style
	TokenInfo      lipgloss.Style
	LineMap        lipgloss.Style

	// Type listing components
	TypeName lipgloss.Style
	TypeKind lipgloss.Style
	Icon     lipgloss.Style

	// Misc
	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		OpenToken:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		CloseToken:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		InlineToken:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		FlatToken:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		TokenInfo:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		LineMap:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TypeName: lipgloss.NewStyle().Bold(true),
		TypeKind: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TableHeader:    plain,
		TableSeparator: plain,
		OpenToken:      plain,
		CloseToken:     plain,
		InlineToken:    plain,
		FlatToken:      plain,
		TokenInfo:      plain,
		LineMap:        plain,
		TypeName:       plain,
		TypeKind:       plain,
		Icon:           plain,
		Success:        plain,
		Failure:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
