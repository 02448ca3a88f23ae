package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"cure-colormap/pkg/swatch"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [title ...]",
	Short: "Render gradient swatches for titles",
	Long: "Render one figure per title with a labelled strip per character.\n\n" +
		"PNG files are written to --out, $" + envOutputDir + " or the current directory.\n" +
		"With --terminal the strips are printed as colored cells instead.\n" +
		"Without titles and without --all, titles are chosen interactively.",
	ValidArgsFunction: completeTitles,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		out, _ := cmd.Flags().GetString("out")
		terminal, _ := cmd.Flags().GetBool("terminal")
		samples, _ := cmd.Flags().GetInt("samples")

		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}

		titles := args
		if !all && len(titles) == 0 {
			titles, err = promptTitles(cat.titles.Names())
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			if len(titles) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no title selected")
				return nil
			}
		}
		for _, t := range titles {
			if _, ok := cat.titles.Get(t); !ok {
				logger.Warn("unknown title", "title", t)
			}
		}

		var surface swatch.Surface
		var png *swatch.PNGSurface
		dir := resolveOutputDir(out)
		if terminal {
			surface = swatch.NewTerminalSurface(cmd.OutOrStdout(), 0)
		} else {
			png = swatch.NewPNGDirSurface(dir)
			surface = png
		}

		h := swatch.NewHelper(cat.registry, cat.titles, surface,
			swatch.WithSamples(samples),
			swatch.WithLogger(logger),
		)
		if all {
			err = h.RenderAll()
		} else {
			err = h.RenderTitles(titles)
		}
		if err != nil {
			return err
		}

		if png != nil {
			for _, c := range png.Written() {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", filepath.Join(dir, swatch.FileName(c)))
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("all", false, "render every title")
	showCmd.Flags().StringP("out", "o", "", "output directory for PNG files")
	showCmd.Flags().BoolP("terminal", "t", false, "print swatches to the terminal instead of writing PNGs")
	showCmd.Flags().Int("samples", swatch.DefaultSamples, "colors sampled per strip")
}

// promptTitles asks for one or more titles with a multi-select form.
func promptTitles(titles []string) ([]string, error) {
	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Titles to render").
				Options(huh.NewOptions(titles...)...).
				Filterable(true).
				Height(15).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}
