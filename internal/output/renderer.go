package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wasserpuncher/loglens/internal/model"
)

// Renderer writes a final LogStats summary to an output stream.
type Renderer interface {
	Render(stats *model.LogStats) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleCritical = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
	styleCount = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true) // cyan
)

// TextRenderer prints a human-readable summary with severity-based colors.
type TextRenderer struct {
	w    io.Writer
	topN int
}

// NewTextRenderer returns a Renderer that writes a colorized text block,
// listing the topN most frequent messages.
func NewTextRenderer(w io.Writer, topN int) *TextRenderer {
	return &TextRenderer{w: w, topN: topN}
}

func (r *TextRenderer) Render(stats *model.LogStats) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(r.w, format+"\n", args...)
		}
	}

	p("%s", styleHeader.Render("=== loglens summary ==="))
	p("Total lines: %d", stats.TotalLines)

	if stats.FirstTimestamp != nil && stats.LastTimestamp != nil {
		p("Time window: %s  ->  %s",
			stats.FirstTimestamp.Format(timeLayout),
			stats.LastTimestamp.Format(timeLayout))
	}

	p("")
	p("Levels:")
	for _, level := range sortedKeys(stats.LevelCounts) {
		p("  %s: %s", styleLevelTag(level), styleCount.Render(fmt.Sprintf("%d", stats.LevelCounts[level])))
	}

	if len(stats.SourceCounts) > 0 {
		p("")
		p("Sources:")
		for _, src := range keysByCount(stats.SourceCounts) {
			p("  %-20s: %d", src, stats.SourceCounts[src])
		}
	}

	p("")
	p("Top %d messages:", r.topN)
	for _, mc := range stats.TopMessages(r.topN) {
		p("  (%dx) %s", mc.Count, mc.Message)
	}

	return err
}

func styleLevelTag(level string) string {
	padded := fmt.Sprintf("%-8s", level)
	switch level {
	case model.LevelDebug:
		return styleDebug.Render(padded)
	case model.LevelWarn:
		return styleWarn.Render(padded)
	case model.LevelError:
		return styleError.Render(padded)
	case model.LevelCritical:
		return styleCritical.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}

// sortedKeys returns map keys in alphabetical order.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// keysByCount returns map keys sorted by count descending, name
// ascending for equal counts so output stays deterministic.
func keysByCount(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the summary as a single indented JSON document.
type JSONRenderer struct {
	w    io.Writer
	topN int
}

// NewJSONRenderer returns a Renderer that writes the JSON report form.
func NewJSONRenderer(w io.Writer, topN int) *JSONRenderer {
	return &JSONRenderer{w: w, topN: topN}
}

func (r *JSONRenderer) Render(stats *model.LogStats) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(stats, r.topN))
}
