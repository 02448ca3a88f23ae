package paletteyaml

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cure-colormap/pkg/cure"
	"cure-colormap/pkg/gradient"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Document is the Go-level representation of a parsed palette file.
//
// Two YAML forms are supported:
//   - Mapping form (preferred): a mapping with "characters" and "titles" keys.
//   - Shorthand form: a bare sequence, interpreted as characters only.
type Document struct {
	Characters []Character `yaml:"characters,omitempty"`
	Titles     []Title     `yaml:"titles,omitempty"`
}

// Character is one palette entry: every name gets the same gradient.
type Character struct {
	Names  []string `yaml:"names" validate:"min=1,dive,required"`
	Colors []string `yaml:"colors" validate:"min=1,dive,required"`
	Mode   string   `yaml:"mode,omitempty" validate:"omitempty,oneof=continuous linear qualitative discrete listed"`
}

// Title lists characters under a display category.
type Title struct {
	Title      string   `yaml:"title" validate:"required"`
	Characters []string `yaml:"characters" validate:"dive,required"`
}

var validate = newValidator()

// newValidator reports field paths using the YAML keys rather than Go names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ---- Parse -----------------------------------------------------------------

// Parse parses a YAML palette document in either mapping or shorthand form.
// Entries are validated and every name is normalized to NFC.
func Parse(in []byte) (Document, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: %w", err)
	}
	if len(docNode.Content) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: empty YAML")
	}
	root := docNode.Content[0]

	var doc Document
	switch root.Kind {
	case yaml.SequenceNode:
		// Shorthand form: bare list → characters only.
		if err := root.Decode(&doc.Characters); err != nil {
			return Document{}, fmt.Errorf("phase=parse path=characters: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("phase=parse path=<doc>: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("phase=parse path=<doc>: unexpected YAML root kind: %d", root.Kind)
	}

	if len(doc.Characters) == 0 && len(doc.Titles) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: missing or empty 'characters' and 'titles'")
	}
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	doc.normalize()
	return doc, nil
}

// ParseMany parses several documents, keeping their order.
func ParseMany(inputs ...[]byte) ([]Document, error) {
	docs := make([]Document, 0, len(inputs))
	for _, in := range inputs {
		doc, err := Parse(in)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ---- Validate --------------------------------------------------------------

func (d Document) validate() error {
	for i, c := range d.Characters {
		if err := validateEntry(fmt.Sprintf("characters[%d]", i), c); err != nil {
			return err
		}
	}
	for i, t := range d.Titles {
		if err := validateEntry(fmt.Sprintf("titles[%d]", i), t); err != nil {
			return err
		}
	}
	return nil
}

// validateEntry runs struct validation and reports the first failing field.
func validateEntry(path string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("phase=validate path=%s: %w", path, err)
	}
	fe := verrs[0]
	return fmt.Errorf("phase=validate path=%s.%s: %s", path, fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "needs at least " + fe.Param() + " entry"
	case "oneof":
		return fmt.Sprintf("%q is not one of: %s", fe.Value(), fe.Param())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// ---- Normalize -------------------------------------------------------------

// normalize rewrites every name to NFC so that composed and decomposed kana
// resolve to the same registry key.
func (d *Document) normalize() {
	for i := range d.Characters {
		d.Characters[i].Names = nfcAll(d.Characters[i].Names)
	}
	for i := range d.Titles {
		d.Titles[i].Title = norm.NFC.String(d.Titles[i].Title)
		d.Titles[i].Characters = nfcAll(d.Titles[i].Characters)
	}
}

func nfcAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = norm.NFC.String(strings.TrimSpace(s))
	}
	return out
}

// ---- Apply -----------------------------------------------------------------

// Apply registers every character of the documents and appends their titles.
// Documents are applied in order, so later entries overwrite earlier names.
func Apply(reg *cure.Registry, titles *cure.Titles, docs ...Document) error {
	for _, doc := range docs {
		for i, c := range doc.Characters {
			mode, err := gradient.ParseMode(c.Mode)
			if err != nil {
				return fmt.Errorf("phase=build path=characters[%d].mode: %w", i, err)
			}
			if _, err := reg.Register(mode, c.Colors, c.Names...); err != nil {
				return fmt.Errorf("phase=build path=characters[%d] (%s): %w", i, strings.Join(c.Names, ", "), err)
			}
		}
		for _, t := range doc.Titles {
			titles.Add(t.Title, t.Characters...)
		}
	}
	return nil
}

// ---- Export ----------------------------------------------------------------

// FromRegistry describes the registry and title table as a Document.
// Colors are written as hex seeds, so the result parses back to equal gradients.
func FromRegistry(reg *cure.Registry, titles *cure.Titles) Document {
	var doc Document
	for _, c := range reg.Characters() {
		doc.Characters = append(doc.Characters, Character{
			Names:  c.Names,
			Colors: c.Gradient.Hex(),
			Mode:   c.Gradient.Mode().String(),
		})
	}
	for _, t := range titles.All() {
		doc.Titles = append(doc.Titles, Title{Title: t.Name, Characters: t.Characters})
	}
	return doc
}

// Marshal encodes a Document in mapping form.
func Marshal(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
