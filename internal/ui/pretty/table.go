package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdcallout/pkg/admonition"
	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tokenColumnCount = 4 // IDX, KIND, MAP, DETAIL
	minKindWidth     = 16
	minMapWidth      = 7
	minDetailWidth   = 24
	heavySeparator   = "="
	defaultTermWidth = 100
	depthIndent      = "  "
)

// TokenFormatter formats a token stream as a styled table.
type TokenFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTokenFormatter creates a new token table formatter.
func NewTokenFormatter(styles *Styles, termWidth int) *TokenFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TokenFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTokens renders the token stream as a table. Kind cells are indented
// by nesting depth so the block structure reads as a tree.
func (t *TokenFormatter) FormatTokens(tokens []mdtok.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(tokens)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	depth := 0
	for idx, token := range tokens {
		if token.Nesting < 0 {
			depth--
		}
		builder.WriteString(t.formatRow(idx, token, depth, widths))
		builder.WriteString("\n")
		if token.Nesting > 0 {
			depth++
		}
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSummary(tokens))
	builder.WriteString("\n")

	return builder.String()
}

type tokenColumnWidths struct {
	idx    int
	kind   int
	lines  int
	detail int
}

// calculateColumnWidths determines column widths based on content.
func (t *TokenFormatter) calculateColumnWidths(tokens []mdtok.Token) tokenColumnWidths {
	widths := tokenColumnWidths{
		idx:    len(fmt.Sprintf("%d", len(tokens)-1)),
		kind:   minKindWidth,
		lines:  minMapWidth,
		detail: minDetailWidth,
	}
	if widths.idx < 3 {
		widths.idx = 3
	}

	depth := 0
	for _, token := range tokens {
		if token.Nesting < 0 {
			depth--
		}
		kindLen := len(depthIndent)*depth + len(token.Kind)
		if kindLen > widths.kind {
			widths.kind = kindLen
		}
		if token.Nesting > 0 {
			depth++
		}

		if mapLen := len(formatLineMap(token)); mapLen > widths.lines {
			widths.lines = mapLen
		}
		if detailLen := len(tokenDetail(token)); detailLen > widths.detail {
			widths.detail = detailLen
		}
	}

	// Constrain to terminal width by shrinking the detail column.
	totalWidth := widths.idx + widths.kind + widths.lines + widths.detail +
		tablePadding*tokenColumnCount
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.detail = max(minDetailWidth, widths.detail-excess)
	}

	return widths
}

// formatHeader formats the table header row.
func (t *TokenFormatter) formatHeader(widths tokenColumnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.idx, "IDX",
		widths.kind, "KIND",
		widths.lines, "LINES",
		widths.detail, "DETAIL",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TokenFormatter) formatSeparator(widths tokenColumnWidths) string {
	totalWidth := widths.idx + widths.kind + widths.lines + widths.detail +
		tablePadding*tokenColumnCount
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth))
}

// formatRow formats a single token row styled by nesting direction.
func (t *TokenFormatter) formatRow(idx int, token mdtok.Token, depth int, widths tokenColumnWidths) string {
	kind := strings.Repeat(depthIndent, depth) + token.Kind
	kind = truncateString(kind, widths.kind)
	lineMap := truncateString(formatLineMap(token), widths.lines)
	detail := truncateString(tokenDetail(token), widths.detail)

	content := fmt.Sprintf(" %-*d  %-*s  %-*s  %-*s",
		widths.idx, idx,
		widths.kind, kind,
		widths.lines, lineMap,
		widths.detail, detail,
	)

	return t.rowStyle(token).Render(content)
}

// rowStyle returns the style for a token by its nesting direction.
func (t *TokenFormatter) rowStyle(token mdtok.Token) lipgloss.Style {
	switch {
	case token.Nesting > 0:
		return t.styles.OpenToken
	case token.Nesting < 0:
		return t.styles.CloseToken
	case token.Kind == "inline":
		return t.styles.InlineToken
	default:
		return t.styles.FlatToken
	}
}

// formatSummary formats a count line for the token table.
func (t *TokenFormatter) formatSummary(tokens []mdtok.Token) string {
	var opens, closes int
	for _, token := range tokens {
		switch {
		case token.Nesting > 0:
			opens++
		case token.Nesting < 0:
			closes++
		}
	}
	return " " + t.styles.Dim.Render(
		fmt.Sprintf("%d tokens | %d open | %d close", len(tokens), opens, closes))
}

// formatLineMap renders the source line range of a token, or "-" when the
// token carries no mapping.
func formatLineMap(token mdtok.Token) string {
	if token.Map[0] == 0 && token.Map[1] == 0 && token.Nesting <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", token.Map[0], token.Map[1])
}

// tokenDetail picks the most informative payload field for the detail column.
func tokenDetail(token mdtok.Token) string {
	switch {
	case token.Info != "":
		return token.Info
	case token.Content != "":
		return strings.ReplaceAll(token.Content, "\n", "\\n")
	default:
		return ""
	}
}

// FormatTypes renders the registered admonition types as an aligned listing.
func FormatTypes(styles *Styles, types []*admonition.Type) string {
	if len(types) == 0 {
		return ""
	}

	nameWidth := 0
	for _, typ := range types {
		if len(typ.Name) > nameWidth {
			nameWidth = len(typ.Name)
		}
	}

	var builder strings.Builder
	for _, typ := range types {
		name := styles.TypeName.Render(fmt.Sprintf("%-*s", nameWidth, typ.Name))
		builder.WriteString(" " + name)
		if typ.Icon != "" {
			builder.WriteString("  " + styles.Icon.Render(typ.Icon))
		}
		builder.WriteString("  " + styles.TypeKind.Render(typ.OpenKind))
		builder.WriteString("\n")
	}
	return builder.String()
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
