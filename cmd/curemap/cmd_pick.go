package main

import (
	"errors"
	"fmt"

	"cure-colormap/pkg/swatch"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find a character and show its gradient",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}
		names := cat.registry.Names()
		if len(names) == 0 {
			return errors.New("no names registered")
		}

		idx, err := fuzzyfinder.Find(
			names,
			func(i int) string {
				return names[i]
			},
			fuzzyfinder.WithPromptString("Select character: "),
			fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
				if i < 0 {
					return ""
				}
				g, _ := cat.registry.Lookup(names[i])
				return stopsPreview(names[i], g)
			}),
		)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("selection: %w", err)
		}

		g, _ := cat.registry.Lookup(names[idx])
		out := cmd.OutOrStdout()
		describeGradient(out, swatch.NewTerminalSurface(out, 0), names[idx], g)
		return nil
	},
}
