// Package render writes equipment data to the console.
package render

import (
	"fmt"
	"io"
	"strings"

	"equipctl/internal/color"
	"equipctl/internal/equipment"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Output formats
const (
	FormatTable = "table"
	FormatRaw   = "raw"
)

const (
	maxColumnWidth = 32
	columnGap      = "  "
)

// Renderer writes to a single output, styled or plain
type Renderer struct {
	out    io.Writer
	styled bool
	format string
}

// New creates a Renderer. Unknown formats fall back to FormatTable.
func New(out io.Writer, styled bool, format string) *Renderer {
	if format != FormatRaw {
		format = FormatTable
	}
	return &Renderer{out: out, styled: styled, format: format}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Title writes a demo heading
func (r *Renderer) Title(title string) {
	fmt.Fprintln(r.out, r.style(color.HeaderStyle, "--- "+title+" ---"))
}

// Line writes a plain line
func (r *Renderer) Line(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Error writes an error line
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.style(color.ErrorStyle, "Error: "+err.Error()))
}

// Records writes the records in the configured format
func (r *Renderer) Records(records []equipment.Record) {
	if r.format == FormatRaw {
		fmt.Fprintln(r.out, FormatList(records))
		return
	}
	r.table(records)
}

// FormatList renders records as a bracketed list, the way the demos print arrays
func FormatList(records []equipment.Record) string {
	parts := make([]string, len(records))
	for i, rec := range records {
		parts[i] = rec.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r *Renderer) table(records []equipment.Record) {
	if len(records) == 0 {
		fmt.Fprintln(r.out, r.style(color.MutedStyle, "(no equipment)"))
		return
	}

	headers := [3]string{"NAME", "KIND", "STATUS"}
	rows := make([][3]string, len(records))
	widths := [3]int{}
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for i, rec := range records {
		rows[i] = [3]string{cell(rec.Name), cell(rec.Kind), cell(rec.Status)}
		for c, v := range rows[i] {
			if w := runewidth.StringWidth(v); w > widths[c] {
				widths[c] = w
			}
		}
	}

	header := runewidth.FillRight(headers[0], widths[0]) + columnGap +
		runewidth.FillRight(headers[1], widths[1]) + columnGap +
		headers[2]
	fmt.Fprintln(r.out, r.style(color.HeaderStyle, header))

	for _, row := range rows {
		// Pad before styling so escape codes do not count toward the width
		line := runewidth.FillRight(row[0], widths[0]) + columnGap +
			runewidth.FillRight(row[1], widths[1]) + columnGap +
			r.style(color.StatusStyle(row[2]), row[2])
		fmt.Fprintln(r.out, line)
	}
}

func cell(s string) string {
	if runewidth.StringWidth(s) > maxColumnWidth {
		return runewidth.Truncate(s, maxColumnWidth, "…")
	}
	return s
}
