package encode

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Monokai Pro accents for the pretty dump
var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#78DCE8"))
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A9DC76"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AB9DF2"))
	boolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6188"))
)

// Dump renders the raw structure on one line. Map keys print in sorted
// order, so equal trees dump identically.
func Dump(v any) string {
	return fmt.Sprintf("%v", stringifyTimes(v))
}

// PrettyDump renders the structure across multiple lines with two-space
// indentation and styled keys and scalars. Styling degrades to plain text
// when the output is not a terminal.
func PrettyDump(v any) string {
	var b strings.Builder
	prettyNode(&b, v, 0)
	b.WriteString("\n")
	return b.String()
}

func prettyNode(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch val := v.(type) {
	case map[string]any:
		b.WriteString("{\n")
		for _, k := range sortedKeys(val) {
			b.WriteString(indent + "  ")
			b.WriteString(keyStyle.Render(k))
			b.WriteString(": ")
			prettyNode(b, val[k], depth+1)
			b.WriteString("\n")
		}
		b.WriteString(indent + "}")
	case []any:
		b.WriteString("[\n")
		for _, item := range val {
			b.WriteString(indent + "  ")
			prettyNode(b, item, depth+1)
			b.WriteString("\n")
		}
		b.WriteString(indent + "]")
	case string:
		b.WriteString(stringStyle.Render(fmt.Sprintf("%q", val)))
	case bool:
		b.WriteString(boolStyle.Render(scalarText(val)))
	default:
		b.WriteString(numberStyle.Render(scalarText(val)))
	}
}
