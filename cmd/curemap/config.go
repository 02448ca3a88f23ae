package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cure-colormap/cmd/curemap/paletteyaml"
	"cure-colormap/pkg/cure"

	"github.com/joho/godotenv"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, config paths, error messages) are computed from it.
const appName = "curemap"

// Derived env var names, computed once at init from appName.
var (
	envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"
	envPalettes  = strings.ToUpper(appName) + "_PALETTES"
	envOutputDir = strings.ToUpper(appName) + "_OUTPUT_DIR"
	envLogLevel  = strings.ToUpper(appName) + "_LOG_LEVEL"
)

// resolveConfigDir returns the base config directory for the application.
// Priority: $<APPNAME>_CONFIG_DIR > $XDG_CONFIG_HOME/<appName> > ~/.config/<appName>
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadDotEnv reads <configDir>/.env into the environment.
// Variables already set are left alone and a missing file is not an error.
func loadDotEnv(configDir string) error {
	path := filepath.Join(configDir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// resolvePaletteFiles returns all palette files to load.
// Order: configDir/palettes/*.yml → $<APPNAME>_PALETTES → flagFiles
// A missing directory is silently skipped; explicitly provided paths are kept as-is
// (errors will surface at read time with a clear message).
func resolvePaletteFiles(configDir string, flagFiles []string) ([]string, error) {
	files, err := globYAML(filepath.Join(configDir, "palettes"))
	if err != nil {
		return nil, err
	}
	files = append(files, splitColon(os.Getenv(envPalettes))...)
	files = append(files, flagFiles...)
	return files, nil
}

// resolveOutputDir picks the PNG output directory: flag, then env, then cwd.
func resolveOutputDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	if v := os.Getenv(envOutputDir); v != "" {
		return v
	}
	return "."
}

// globYAML returns sorted *.yml / *.yaml files in dir.
// Returns nil without error if dir does not exist.
func globYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// splitColon splits a colon-separated string, filtering empty parts.
func splitColon(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// catalog is the registry and title table the commands work on.
type catalog struct {
	registry *cure.Registry
	titles   *cure.Titles
}

// loadCatalog starts from the built-in data and applies every palette file in order.
func loadCatalog(files []string, logger *slog.Logger) (*catalog, error) {
	reg := cure.Builtin()
	titles := cure.BuiltinTitles()

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("palette file %s: %w", f, err)
		}
		doc, err := paletteyaml.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("palette file %s: %w", f, err)
		}
		if err := paletteyaml.Apply(reg, titles, doc); err != nil {
			return nil, fmt.Errorf("palette file %s: %w", f, err)
		}
		logger.Debug("palette file loaded", "path", f, "characters", len(doc.Characters), "titles", len(doc.Titles))
	}
	return &catalog{registry: reg, titles: titles}, nil
}

// load resolves the config directory and builds the catalog for a command run.
func load(flagFiles []string, logger *slog.Logger) (*catalog, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	files, err := resolvePaletteFiles(configDir, flagFiles)
	if err != nil {
		return nil, err
	}
	return loadCatalog(files, logger)
}
