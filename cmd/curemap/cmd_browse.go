package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse titles and their swatches interactively",
	Long: "Browse titles in a table with a live swatch preview of the selected title.\n" +
		"Press s to save the selected title as PNG to --out, $" + envOutputDir + " or the current directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}
		p := tea.NewProgram(newBrowseModel(cat, resolveOutputDir(out)), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	browseCmd.Flags().StringP("out", "o", "", "output directory for saved PNG files")
}
