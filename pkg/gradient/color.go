package gradient

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts "#RRGGBB", "#RGB" or a CSS color name ("black", "white").
func ParseColor(s string) (colorful.Color, error) {
	v := strings.TrimSpace(s)
	if strings.HasPrefix(v, "#") {
		if len(v) != 4 && len(v) != 7 {
			return colorful.Color{}, fmt.Errorf("%w %q: expected #RGB or #RRGGBB", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(v)]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("%w %q: not a hex code or color name", ErrInvalidColor, s)
}

// parseColors parses every entry, reporting the index of the first bad one.
func parseColors(colors []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, len(colors))
	for i, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}
