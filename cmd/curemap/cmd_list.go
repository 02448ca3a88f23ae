package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List titles and their characters",
	Long: "List every title with its characters in display order.\n" +
		"With --names, list every registered name with its gradient mode instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, _ := cmd.Flags().GetBool("names")
		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}
		if names {
			printNames(cmd.OutOrStdout(), cat)
			return nil
		}
		printTitles(cmd.OutOrStdout(), cat)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("names", false, "list registered names instead of titles")
}

// printTitles prints each title followed by its members, marking members
// that have no gradient.
func printTitles(w io.Writer, cat *catalog) {
	all := cat.titles.All()
	if len(all) == 0 {
		fmt.Fprintln(w, "no titles found")
		return
	}
	for i, t := range all {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", t.Name, len(t.Characters))

		maxLen := 0
		for _, name := range t.Characters {
			if n := lipgloss.Width(name); n > maxLen {
				maxLen = n
			}
		}
		for _, name := range t.Characters {
			kind := "missing"
			if g, ok := cat.registry.Lookup(name); ok {
				kind = g.Mode().String()
			}
			fmt.Fprintf(w, "  %s  [%s]\n", padRight(name, maxLen), kind)
		}
	}
}

// printNames prints all registered names aligned, with their gradient mode
// and seed count.
func printNames(w io.Writer, cat *catalog) {
	names := cat.registry.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "no names registered")
		return
	}
	maxLen := 0
	for _, name := range names {
		if n := lipgloss.Width(name); n > maxLen {
			maxLen = n
		}
	}
	for _, name := range names {
		g, _ := cat.registry.Lookup(name)
		fmt.Fprintf(w, "%s  [%s, %d colors]\n", padRight(name, maxLen), g.Mode(), g.Len())
	}
}

// padRight pads s with spaces to n terminal cells. fmt's width counts
// runes, but kana take two cells each.
func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
