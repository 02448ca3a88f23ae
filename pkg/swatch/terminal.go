package swatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultColumns     = 64
	terminalLabelWidth = 22
)

// TerminalSurface prints strips as rows of colored cells.
type TerminalSurface struct {
	w       io.Writer
	columns int

	title lipgloss.Style
	label lipgloss.Style
	cell  lipgloss.Style
}

// NewTerminalSurface writes to w using at most columns cells per strip.
// The color profile is detected from w.
func NewTerminalSurface(w io.Writer, columns int) *TerminalSurface {
	return NewStyledTerminalSurface(w, lipgloss.NewRenderer(w), columns)
}

// NewStyledTerminalSurface is NewTerminalSurface with an explicit renderer,
// for output that ends up on a terminal other than w.
func NewStyledTerminalSurface(w io.Writer, r *lipgloss.Renderer, columns int) *TerminalSurface {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &TerminalSurface{
		w:       w,
		columns: columns,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		label:   r.NewStyle().Width(terminalLabelWidth).Align(lipgloss.Right).PaddingRight(1),
		cell:    r.NewStyle(),
	}
}

func (s *TerminalSurface) Begin(category string, rows int) error {
	_, err := fmt.Fprintln(s.w, s.title.Render(category+" colormaps"))
	return err
}

func (s *TerminalSurface) Strip(label string, colors []colorful.Color) error {
	_, err := fmt.Fprintln(s.w, s.label.Render(label)+s.Bar(colors))
	return err
}

func (s *TerminalSurface) End() error {
	_, err := fmt.Fprintln(s.w)
	return err
}

// Bar renders colors as a single line of background-colored cells,
// downsampling to the surface width.
func (s *TerminalSurface) Bar(colors []colorful.Color) string {
	n := len(colors)
	if n == 0 {
		return ""
	}
	cols := s.columns
	if n < cols {
		cols = n
	}
	var b strings.Builder
	for i := 0; i < cols; i++ {
		c := colors[i*n/cols]
		b.WriteString(s.cell.Background(lipgloss.Color(c.Clamped().Hex())).Render(" "))
	}
	return b.String()
}
