// Package swatch renders registered gradients as labelled color strips.
//
// The Helper resolves character names through a cure.Registry and hands the
// sampled colors to a Surface, which owns the actual drawing. Names without
// a gradient are skipped without error.
package swatch

import (
	"fmt"
	"log/slog"

	"cure-colormap/pkg/cure"
	"cure-colormap/pkg/gradient"

	lru "github.com/hashicorp/golang-lru/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSamples matches the lookup-table size of a typical plotting colormap.
const DefaultSamples = 256

const stripCacheSize = 128

// Surface draws one figure per category.
// Begin opens a figure with room for rows strips, Strip adds one labelled
// strip, End finishes the figure.
type Surface interface {
	Begin(category string, rows int) error
	Strip(label string, colors []colorful.Color) error
	End() error
}

type stripKey struct {
	g *gradient.Gradient
	n int
}

// Helper drives a Surface from a registry and a title table.
type Helper struct {
	registry *cure.Registry
	titles   *cure.Titles
	surface  Surface
	samples  int
	logger   *slog.Logger
	strips   *lru.Cache[stripKey, []colorful.Color]
}

// Option configures a Helper.
type Option func(*Helper)

// WithSamples sets the number of positions sampled per strip.
func WithSamples(n int) Option {
	return func(h *Helper) {
		if n > 0 {
			h.samples = n
		}
	}
}

// WithLogger sets the logger used for skipped names and titles.
func WithLogger(l *slog.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHelper returns a Helper drawing onto surface.
func NewHelper(registry *cure.Registry, titles *cure.Titles, surface Surface, opts ...Option) *Helper {
	// Only fails for a non-positive size.
	strips, _ := lru.New[stripKey, []colorful.Color](stripCacheSize)
	h := &Helper{
		registry: registry,
		titles:   titles,
		surface:  surface,
		samples:  DefaultSamples,
		logger:   slog.Default(),
		strips:   strips,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RenderCategory draws one strip per name that has a gradient.
// If none of the names resolve nothing is drawn.
func (h *Helper) RenderCategory(category string, names []string) error {
	type row struct {
		label  string
		colors []colorful.Color
	}

	var rows []row
	for _, name := range names {
		g, ok := h.registry.Lookup(name)
		if !ok {
			h.logger.Debug("no gradient registered, skipping", "category", category, "name", name)
			continue
		}
		rows = append(rows, row{label: name, colors: h.sample(g)})
	}
	if len(rows) == 0 {
		h.logger.Debug("nothing to draw", "category", category)
		return nil
	}

	if err := h.surface.Begin(category, len(rows)); err != nil {
		return fmt.Errorf("category %q: %w", category, err)
	}
	for _, r := range rows {
		if err := h.surface.Strip(r.label, r.colors); err != nil {
			return fmt.Errorf("category %q: strip %q: %w", category, r.label, err)
		}
	}
	if err := h.surface.End(); err != nil {
		return fmt.Errorf("category %q: %w", category, err)
	}
	return nil
}

// RenderTitles draws each known title in the given order.
// Unknown titles are skipped.
func (h *Helper) RenderTitles(titles []string) error {
	for _, title := range titles {
		names, ok := h.titles.Get(title)
		if !ok {
			h.logger.Debug("unknown title, skipping", "title", title)
			continue
		}
		if err := h.RenderCategory(title, names); err != nil {
			return err
		}
	}
	return nil
}

// RenderAll draws every title in insertion order.
func (h *Helper) RenderAll() error {
	for _, t := range h.titles.All() {
		if err := h.RenderCategory(t.Name, t.Characters); err != nil {
			return err
		}
	}
	return nil
}

func (h *Helper) sample(g *gradient.Gradient) []colorful.Color {
	key := stripKey{g: g, n: h.samples}
	if colors, ok := h.strips.Get(key); ok {
		return colors
	}
	colors := g.Sample(h.samples)
	h.strips.Add(key, colors)
	return colors
}
