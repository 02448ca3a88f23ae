package main

import (
	"fmt"
	"io"
	"strings"

	"cure-colormap/cmd/curemap/paletteyaml"

	"github.com/xuri/excelize/v2"
)

const (
	sheetCharacters = "Characters"
	sheetTitles     = "Titles"

	// Columns before the first color stop on the characters sheet.
	stopColumn = 4
)

func writeYAML(w io.Writer, cat *catalog) error {
	out, err := paletteyaml.Marshal(paletteyaml.FromRegistry(cat.registry, cat.titles))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// writeXLSX writes one row per character, each seed color as a filled cell,
// and a second sheet with the title table.
func writeXLSX(w io.Writer, cat *catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCharacters); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetCharacters, "A1", &[]any{"Name", "Aliases", "Mode"}); err != nil {
		return err
	}
	styles := map[string]int{}
	maxStops := 0
	for i, c := range cat.registry.Characters() {
		row := i + 2
		hex := c.Gradient.Hex()
		if len(hex) > maxStops {
			maxStops = len(hex)
		}
		name := c.Names[len(c.Names)-1]
		aliases := strings.Join(c.Names[:len(c.Names)-1], ", ")
		if err := f.SetSheetRow(sheetCharacters, cell(1, row), &[]any{name, aliases, c.Gradient.Mode().String()}); err != nil {
			return err
		}
		for j, h := range hex {
			ref := cell(stopColumn+j, row)
			if err := f.SetCellValue(sheetCharacters, ref, h); err != nil {
				return err
			}
			id, err := fillStyle(f, styles, h)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetCharacters, ref, ref, id); err != nil {
				return err
			}
		}
	}
	for j := 0; j < maxStops; j++ {
		if err := f.SetCellValue(sheetCharacters, cell(stopColumn+j, 1), fmt.Sprintf("Stop %d", j+1)); err != nil {
			return err
		}
	}
	last := stopColumn + maxStops - 1
	if last < stopColumn-1 {
		last = stopColumn - 1
	}
	if err := f.SetCellStyle(sheetCharacters, "A1", cell(last, 1), header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetCharacters, "A", "B", 24); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetTitles); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetTitles, "A1", &[]any{"Title", "Characters"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetTitles, "A1", "B1", header); err != nil {
		return err
	}
	for i, t := range cat.titles.All() {
		if err := f.SetSheetRow(sheetTitles, cell(1, i+2), &[]any{t.Name, strings.Join(t.Characters, ", ")}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetTitles, "A", "A", 36); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

// fillStyle returns a solid fill style for hex, reusing styles already created.
func fillStyle(f *excelize.File, styles map[string]int, hex string) (int, error) {
	if id, ok := styles[hex]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(hex, "#")}},
	})
	if err != nil {
		return 0, err
	}
	styles[hex] = id
	return id, nil
}

func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
