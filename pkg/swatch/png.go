package swatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure geometry, in pixels.
const (
	pngWidth       = 900
	pngTitleHeight = 40
	pngRowHeight   = 35
	pngRowGap      = 6
	pngLabelWidth  = 180
	pngRightMargin = 20
	pngBottomPad   = 10

	pngTitleFontSize = 14
	pngLabelFontSize = 10
)

var errNoFigure = errors.New("no figure open: call Begin first")

// Opener returns the destination for the figure of one category.
type Opener func(category string) (io.WriteCloser, error)

// PNGSurface rasterizes each category into a PNG with go-chart's renderer.
// Axes are not drawn; labels sit to the left of their strip.
type PNGSurface struct {
	open Opener

	r        chart.Renderer
	category string
	row      int
	written  []string
}

// NewPNGSurface returns a surface writing through open.
func NewPNGSurface(open Opener) *PNGSurface {
	return &PNGSurface{open: open}
}

// NewPNGDirSurface writes one file per category into dir, which is created
// if needed. File names are derived from the category with FileName.
func NewPNGDirSurface(dir string) *PNGSurface {
	return NewPNGSurface(func(category string) (io.WriteCloser, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		return os.Create(filepath.Join(dir, FileName(category)))
	})
}

// Written returns the categories rendered so far.
func (s *PNGSurface) Written() []string {
	return append([]string(nil), s.written...)
}

func (s *PNGSurface) Begin(category string, rows int) error {
	height := pngTitleHeight + rows*(pngRowHeight+pngRowGap) + pngBottomPad
	r, err := chart.PNG(pngWidth, height)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	r.SetFont(font)

	fillRect(r, drawing.ColorWhite, 0, 0, pngWidth, height)

	title := category + " colormaps"
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(pngTitleFontSize)
	tb := r.MeasureText(title)
	r.Text(title, (pngWidth-tb.Width())/2, (pngTitleHeight+tb.Height())/2)

	s.r = r
	s.category = category
	s.row = 0
	return nil
}

func (s *PNGSurface) Strip(label string, colors []colorful.Color) error {
	if s.r == nil {
		return errNoFigure
	}
	top := pngTitleHeight + s.row*(pngRowHeight+pngRowGap)
	bottom := top + pngRowHeight
	left := pngLabelWidth
	span := pngWidth - pngRightMargin - left

	n := len(colors)
	for i, c := range colors {
		x0 := left + i*span/n
		x1 := left + (i+1)*span/n
		if x1 <= x0 {
			continue
		}
		fillRect(s.r, toDrawing(c), x0, top, x1, bottom)
	}

	s.r.SetFontColor(drawing.ColorBlack)
	s.r.SetFontSize(pngLabelFontSize)
	tb := s.r.MeasureText(label)
	s.r.Text(label, left-10-tb.Width(), top+(pngRowHeight+tb.Height())/2)

	s.row++
	return nil
}

func (s *PNGSurface) End() error {
	if s.r == nil {
		return errNoFigure
	}
	r, category := s.r, s.category
	s.r = nil

	w, err := s.open(category)
	if err != nil {
		return err
	}
	if err := r.Save(w); err != nil {
		w.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	s.written = append(s.written, category)
	return nil
}

func fillRect(r chart.Renderer, c drawing.Color, x0, y0, x1, y1 int) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// FileName turns a category into a file name: lowercase letters and digits
// kept, every other run of characters collapsed to a single dash.
func FileName(category string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(category) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "category"
	}
	return name + ".png"
}
