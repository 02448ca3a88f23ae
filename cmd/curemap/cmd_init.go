package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed init_palettes.yml
var initPalettesYAML []byte

const initPalettesHeader = "# " + appName + " palettes\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n" +
	"# Every *.yml file in this directory is loaded after the built-in palettes.\n" +
	"# Check the result with:  " + appName + " list\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n\n"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise the " + appName + " config directory with a starter palette file",
	Long: "Create the " + appName + " config directory and a commented starter palette file.\n\n" +
		"Directories created:\n" +
		"  <config>/palettes/   palette YAML files\n\n" +
		"The default config directory follows the same priority as every command:\n" +
		"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		dir, _ := cmd.Flags().GetString("dir")

		if dir == "" {
			var err error
			dir, err = resolveConfigDir()
			if err != nil {
				return err
			}
		}

		path, err := writeStarterPalette(dir, force)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "initialised %s\n", dir)
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", path)
		fmt.Fprintf(cmd.ErrOrStderr(), "\nRun `%s list` to see the result.\n", appName)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite existing files")
	initCmd.Flags().String("dir", "", "target config directory (default: auto-resolved)")
}

// writeStarterPalette creates <dir>/palettes/custom.yml and returns its path.
func writeStarterPalette(dir string, force bool) (string, error) {
	palettesDir := filepath.Join(dir, "palettes")
	if err := os.MkdirAll(palettesDir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", palettesDir, err)
	}
	path := filepath.Join(palettesDir, "custom.yml")
	if err := writeInitFile(path, initPalettesHeader, initPalettesYAML, force); err != nil {
		return "", err
	}
	return path, nil
}

func writeInitFile(path, header string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if header != "" {
		fmt.Fprint(f, header)
	}
	_, err = f.Write(content)
	return err
}
