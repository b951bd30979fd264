// Package output renders search results for the CLI: styled cards on a TTY,
// plain text when piped, or JSON for machine consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quantrail/fundlens/internal/search"
	"github.com/quantrail/fundlens/internal/ui"
)

// Renderer writes search results to a stream.
type Renderer struct {
	out    io.Writer
	styles ui.Styles
}

// NewRenderer creates a renderer. noColor strips all styling.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{
		out:    out,
		styles: ui.GetStyles(noColor),
	}
}

// RenderJSON writes results as a JSON array.
func (r *Renderer) RenderJSON(results []*search.SearchResult) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// RenderPretty writes one card per result. The no-results sentinel renders
// as a dimmed notice instead of a card.
func (r *Renderer) RenderPretty(results []*search.SearchResult) {
	for i, res := range results {
		if res.IsNoResult() {
			_, _ = fmt.Fprintln(r.out, r.styles.Dim.Render(res.Explanation))
			continue
		}
		_, _ = fmt.Fprintln(r.out, r.renderCard(i+1, res))
	}
}

func (r *Renderer) renderCard(rank int, res *search.SearchResult) string {
	var b strings.Builder

	title := fmt.Sprintf("%d. %s", rank, res.Name)
	b.WriteString(r.styles.Header.Render(title))
	b.WriteString("  ")
	b.WriteString(r.styles.Stage.Render(typeLabel(res.Type)))
	b.WriteString("  ")
	b.WriteString(r.styles.Speed.Render(fmt.Sprintf("score %.2f", res.MatchScore)))
	b.WriteString("\n")
	b.WriteString(res.Explanation)

	if lines := metadataLines(&res.Metadata); len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Label.Render(strings.Join(lines, "  ·  ")))
	}

	return r.styles.Panel.Render(b.String())
}

func typeLabel(t search.ResultType) string {
	switch t {
	case search.TypeMutualFund:
		return "FUND"
	case search.TypeStock:
		return "STOCK"
	default:
		return strings.ToUpper(string(t))
	}
}

// metadataLines flattens the sparse metadata into short display fragments.
func metadataLines(m *search.Metadata) []string {
	var lines []string
	if m.FundHouse != "" {
		lines = append(lines, m.FundHouse)
	}
	if m.Category != "" {
		lines = append(lines, m.Category)
	}
	if m.Symbol != "" {
		lines = append(lines, m.Symbol)
	}
	if m.Sector != "" {
		lines = append(lines, m.Sector)
	}
	if m.Returns != nil && m.Returns.ThreeYear != nil {
		lines = append(lines, fmt.Sprintf("3y %s%%", formatFloat(*m.Returns.ThreeYear)))
	}
	if m.AUM != nil {
		lines = append(lines, fmt.Sprintf("AUM ₹%s cr", formatFloat(*m.AUM)))
	}
	if m.TaxSaving {
		lines = append(lines, "tax saving")
	}
	if m.RiskRating != "" {
		lines = append(lines, m.RiskRating+" risk")
	}
	if m.ExpenseRatio != nil {
		lines = append(lines, fmt.Sprintf("expense %.2f%%", *m.ExpenseRatio))
	}
	if m.DividendYield != nil {
		lines = append(lines, fmt.Sprintf("yield %.1f%%", *m.DividendYield))
	}
	if m.Holding != nil {
		lines = append(lines, fmt.Sprintf("holds %s%% %s", formatFloat(m.Holding.Percentage), m.Holding.Stock))
	}
	if m.Exposure != nil {
		lines = append(lines, fmt.Sprintf("%s%% %s via %s",
			formatFloat(m.Exposure.Percentage), m.Exposure.Sector, m.Exposure.Stock))
	}
	return lines
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Summary prints a dim one-line footer, e.g. result counts and timing.
func (r *Renderer) Summary(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Dim.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a styled error line.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}
