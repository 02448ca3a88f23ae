package main

import (
	"cure-colormap/pkg/lib"
)

var (
	flagPalettes []string
	flagVerbose  bool
)

func main() {
	rootCmd.AddCommand(listCmd, showCmd, lookupCmd, pickCmd, browseCmd, exportCmd, initCmd)

	rootCmd.PersistentFlags().StringArrayVarP(&flagPalettes, "palette", "p", nil,
		"palette YAML file (repeatable; default: ~/.config/"+appName+"/palettes/*.yml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log debug messages to stderr")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
