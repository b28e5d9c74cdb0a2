// Package chart renders the spending-by-category breakdown in the terminal.
package chart

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tally/internal/model"
)

// DefaultTitle heads the rendered chart.
const DefaultTitle = "All time expenses by category"

// palette cycles through slice colors.
var palette = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#FFE66D"),
	lipgloss.Color("#5FAFD7"),
	lipgloss.Color("#C39BD3"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#F8B88B"),
	lipgloss.Color("#A3E635"),
}

// Slice is one category's share of the chart.
type Slice struct {
	Name    string
	Amount  float64
	Percent float64
}

// Options control rendering.
type Options struct {
	Title    string
	Currency string
	Width    int
}

// Slices orders the totals by amount (largest first, ties by name) and
// computes each share of the absolute grand total.
func Slices(totals model.CategoryTotals) []Slice {
	var absTotal float64
	for _, v := range totals {
		absTotal += math.Abs(v)
	}

	slices := make([]Slice, 0, len(totals))
	for name, amount := range totals {
		s := Slice{Name: name, Amount: amount}
		if absTotal > 0 {
			s.Percent = math.Abs(amount) / absTotal * 100
		}
		slices = append(slices, s)
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Name < slices[j].Name
	})

	return slices
}

// Render writes the chart for totals to w.
func Render(w io.Writer, totals model.CategoryTotals, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Width <= 0 {
		opts.Width = 40
	}

	if len(totals) == 0 {
		_, err := fmt.Fprintln(w, "No expenses to chart.")
		return err
	}

	slices := Slices(totals)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(opts.Title))
	b.WriteString("\n\n")
	b.WriteString(strip(slices, opts.Width))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, s := range slices {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	for i, s := range slices {
		style := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
		bar := style.Render(strings.Repeat("█", cells(s.Percent, opts.Width)))
		fmt.Fprintf(&b, "%s  %-*s  %s\n", bar+strings.Repeat(" ", opts.Width-cells(s.Percent, opts.Width)),
			nameWidth, s.Name, Label(s, opts.Currency))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Label formats a slice as "PCT% (ABSOLUTE CURRENCY)". The absolute value is
// truncated to a whole number.
func Label(s Slice, currency string) string {
	return fmt.Sprintf("%.1f%% (%d%s)", s.Percent, int64(s.Amount), currency)
}

// strip draws every slice into one proportional band, the flattened pie.
func strip(slices []Slice, width int) string {
	var b strings.Builder
	used := 0
	for i, s := range slices {
		n := cells(s.Percent, width)
		if i == len(slices)-1 {
			n = width - used
		}
		if used+n > width {
			n = width - used
		}
		if n <= 0 {
			continue
		}
		used += n
		b.WriteString(lipgloss.NewStyle().Foreground(palette[i%len(palette)]).Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// cells converts a percentage into a bar length, keeping visible slices visible.
func cells(percent float64, width int) int {
	n := int(math.Round(percent / 100 * float64(width)))
	if n == 0 && percent > 0 {
		n = 1
	}
	return min(n, width)
}
