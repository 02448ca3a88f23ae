package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// logger is replaced in PersistentPreRunE once flags and .env are known.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Pretty Cure character color gradients",
	Long: "Look up and render the color gradient of every Pretty Cure character.\n\n" +
		"Built-in palettes can be extended with YAML files in\n" +
		"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName + "\n" +
		"under palettes/, listed in $" + envPalettes + " or passed with --palette.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := loadDotEnv(configDir); err != nil {
			return err
		}
		logger = newLogger(os.Stderr, flagVerbose)
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// completeTitles suggests title names for shell completion.
func completeTitles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := load(flagPalettes, logger)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(cat.titles.Names(), args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeNames suggests registered character names for shell completion.
func completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := load(flagPalettes, logger)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(cat.registry.Names(), args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// filterPrefix keeps candidates starting with prefix that were not already given.
func filterPrefix(candidates, given []string, prefix string) []string {
	seen := make(map[string]bool, len(given))
	for _, g := range given {
		seen[g] = true
	}
	var out []string
	for _, c := range candidates {
		if !seen[c] && strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
