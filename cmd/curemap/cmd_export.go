package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry as YAML or an Excel workbook",
	Long: "Export every character and title.\n\n" +
		"  yaml  palette file form, loadable again with --palette (default: stdout)\n" +
		"  xlsx  workbook with one colored cell per color stop (requires --output)",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		cat, err := load(flagPalettes, logger)
		if err != nil {
			return err
		}

		var write func(io.Writer, *catalog) error
		switch format {
		case "yaml", "yml":
			write = writeYAML
		case "xlsx":
			if output == "" {
				return fmt.Errorf("xlsx export needs --output")
			}
			write = writeXLSX
		default:
			return fmt.Errorf("unknown format %q (want yaml or xlsx)", format)
		}

		if output == "" {
			return write(cmd.OutOrStdout(), cat)
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		if err := write(f, cat); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", output, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "yaml", "output format: yaml or xlsx")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout, yaml only)")
}
