// Package gradient builds colormaps from ordered lists of seed colors.
//
// A continuous gradient places its seeds at evenly spaced stops i/(n-1) on
// [0,1] and blends linearly in RGB between neighbours. Repeating a seed at
// adjacent stops widens its band without adding a new color. A qualitative
// gradient is a fixed palette: positions select a seed, nothing is blended.
//
// Gradients are immutable once built, so a single instance can be shared by
// any number of owners.
package gradient

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects how a gradient is built from its seed colors.
type Mode int

const (
	Continuous Mode = iota
	Qualitative
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Qualitative:
		return "qualitative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to a Mode. The empty string is Continuous and
// "discrete" is accepted as a synonym for "qualitative".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continuous", "linear":
		return Continuous, nil
	case "qualitative", "discrete", "listed":
		return Qualitative, nil
	default:
		return 0, fmt.Errorf("%w %q (want continuous or qualitative)", ErrUnknownMode, s)
	}
}

// Stop is a seed color pinned at a position in [0,1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient maps a normalized position to a color.
type Gradient struct {
	mode  Mode
	seeds []colorful.Color
}

// New builds a continuous gradient. It needs at least two colors: a single
// color has nothing to interpolate towards and is rejected with
// ErrTooFewColors.
func New(colors []string) (*Gradient, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if len(colors) < 2 {
		return nil, ErrTooFewColors
	}
	seeds, err := parseColors(colors)
	if err != nil {
		return nil, err
	}
	return &Gradient{mode: Continuous, seeds: seeds}, nil
}

// NewQualitative builds a listed palette. One color is enough.
func NewQualitative(colors []string) (*Gradient, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	seeds, err := parseColors(colors)
	if err != nil {
		return nil, err
	}
	return &Gradient{mode: Qualitative, seeds: seeds}, nil
}

// Build dispatches to New or NewQualitative.
func Build(mode Mode, colors []string) (*Gradient, error) {
	switch mode {
	case Continuous:
		return New(colors)
	case Qualitative:
		return NewQualitative(colors)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// Mode reports how the gradient was built.
func (g *Gradient) Mode() Mode { return g.mode }

// Len returns the number of seed colors, duplicates included.
func (g *Gradient) Len() int { return len(g.seeds) }

// Colors returns a copy of the seed colors in input order.
func (g *Gradient) Colors() []colorful.Color {
	return append([]colorful.Color(nil), g.seeds...)
}

// Hex returns the seed colors as lowercase "#rrggbb" strings.
func (g *Gradient) Hex() []string {
	out := make([]string, len(g.seeds))
	for i, c := range g.seeds {
		out[i] = c.Hex()
	}
	return out
}

// Stops returns the seed positions. Continuous seeds sit at i/(n-1);
// qualitative seeds at the lower edge of their bin, i/n.
func (g *Gradient) Stops() []Stop {
	n := len(g.seeds)
	out := make([]Stop, n)
	for i, c := range g.seeds {
		var pos float64
		switch {
		case g.mode == Qualitative:
			pos = float64(i) / float64(n)
		case n > 1:
			pos = float64(i) / float64(n-1)
		}
		out[i] = Stop{Pos: pos, Color: c}
	}
	return out
}

// At returns the color at position t. Positions outside [0,1] are clamped,
// NaN is treated as 0.
func (g *Gradient) At(t float64) colorful.Color {
	n := len(g.seeds)
	if math.IsNaN(t) || t <= 0 {
		return g.seeds[0]
	}
	if t >= 1 {
		return g.seeds[n-1]
	}

	if g.mode == Qualitative {
		idx := int(t * float64(n))
		if idx >= n {
			idx = n - 1
		}
		return g.seeds[idx]
	}

	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return g.seeds[n-1]
	}
	return g.seeds[i].BlendRgb(g.seeds[i+1], pos-float64(i)).Clamped()
}

// Sample evaluates the gradient at n evenly spaced positions covering [0,1]
// inclusive of both ends. n <= 0 yields nil.
func (g *Gradient) Sample(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	if n == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

func (g *Gradient) String() string {
	return fmt.Sprintf("%s[%s]", g.mode, strings.Join(g.Hex(), " "))
}
