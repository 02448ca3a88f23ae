package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cure-colormap/pkg/gradient"
	"cure-colormap/pkg/lib"
	"cure-colormap/pkg/swatch"

	"github.com/spf13/cobra"
)

// exitNoMatch is the status of a lookup that resolved nothing.
const exitNoMatch = 2

var errNoMatch = errors.New("no gradient registered")

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME...",
	Short: "Show the gradient registered under each name",
	Long: "Print the mode, color stops and a swatch for each name.\n" +
		"Names are matched exactly, in either script. Unknown names are reported;\n" +
		"the command fails only if none of the names resolve.",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		surface := swatch.NewTerminalSurface(out, 0)

		var missing []string
		for _, name := range args {
			g, ok := cat.registry.Lookup(name)
			if !ok {
				missing = append(missing, name)
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: not found\n", name)
				continue
			}
			describeGradient(out, surface, name, g)
		}
		if len(missing) == len(args) {
			return lib.WithCode(fmt.Errorf("%w for %s", errNoMatch, strings.Join(missing, ", ")), exitNoMatch)
		}
		return nil
	},
}

// describeGradient prints name, mode, stops and a swatch line.
func describeGradient(w io.Writer, surface *swatch.TerminalSurface, name string, g *gradient.Gradient) {
	fmt.Fprintf(w, "%s  [%s, %d colors]\n", name, g.Mode(), g.Len())
	for _, s := range g.Stops() {
		fmt.Fprintf(w, "  %.3f  %s\n", s.Pos, s.Color.Hex())
	}
	fmt.Fprintf(w, "  %s\n", surface.Bar(g.Sample(swatch.DefaultSamples)))
}

// stopsPreview is describeGradient without the swatch, for narrow previews.
func stopsPreview(name string, g *gradient.Gradient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s, %d colors\n\n", name, g.Mode(), g.Len())
	for _, s := range g.Stops() {
		fmt.Fprintf(&b, "%.3f  %s\n", s.Pos, s.Color.Hex())
	}
	return b.String()
}
