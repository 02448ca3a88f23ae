package paletteyaml

import (
	"errors"
	"strings"
	"testing"

	"cure-colormap/pkg/cure"
	"cure-colormap/pkg/gradient"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireParseOK(t *testing.T, yml string) Document {
	t.Helper()
	doc, err := Parse([]byte(yml))
	if err != nil {
		t.Fatalf("expected parse success, got: %v", err)
	}
	return doc
}

func requireParseErr(t *testing.T, yml string, wantSubstrs ...string) {
	t.Helper()
	_, err := Parse([]byte(yml))
	if err == nil {
		t.Fatalf("expected parse error but got none")
	}
	for _, sub := range wantSubstrs {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("parse error %q does not contain %q", err.Error(), sub)
		}
	}
}

// ---------------------------------------------------------------------------
// Parse
// ---------------------------------------------------------------------------

func TestParse_MappingForm(t *testing.T) {
	doc := requireParseOK(t, `
characters:
  - names: [キュアゴリラ, Cure Gorilla]
    colors: ["#333333", "#FF00FF"]
  - names: [Cure Dots]
    colors: [red, green, blue]
    mode: qualitative
titles:
  - title: Gorilla PreCure
    characters: [Cure Gorilla, Cure Black]
`)
	want := Document{
		Characters: []Character{
			{Names: []string{"キュアゴリラ", "Cure Gorilla"}, Colors: []string{"#333333", "#FF00FF"}},
			{Names: []string{"Cure Dots"}, Colors: []string{"red", "green", "blue"}, Mode: "qualitative"},
		},
		Titles: []Title{{Title: "Gorilla PreCure", Characters: []string{"Cure Gorilla", "Cure Black"}}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document (-want +got):\n%s", diff)
	}
}

func TestParse_ShorthandForm(t *testing.T) {
	doc := requireParseOK(t, `
- names: [Cure Gorilla]
  colors: [black, white]
`)
	if len(doc.Characters) != 1 || len(doc.Titles) != 0 {
		t.Fatalf("shorthand form: want 1 character and no titles, got %+v", doc)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yml  string
		want []string
	}{
		{"empty document", ``, []string{"phase=parse", "empty YAML"}},
		{"scalar root", `hello`, []string{"phase=parse", "unexpected YAML root kind"}},
		{"empty mapping", `{}`, []string{"missing or empty"}},
		{"bad yaml", "characters: [", []string{"phase=parse path=<doc>"}},
		{
			"no names",
			"characters:\n  - colors: [black, white]\n",
			[]string{"phase=validate", "path=characters[0].names", "at least 1"},
		},
		{
			"no colors",
			"characters:\n  - names: [x]\n    colors: []\n",
			[]string{"path=characters[0].colors"},
		},
		{
			"blank name",
			"characters:\n  - names: [ok]\n    colors: [black]\n  - names: [\"\"]\n    colors: [black]\n",
			[]string{"path=characters[1].names[0]", "must not be empty"},
		},
		{
			"unknown mode",
			"characters:\n  - names: [x]\n    colors: [black, white]\n    mode: radial\n",
			[]string{"path=characters[0].mode", `"radial"`},
		},
		{
			"untitled title",
			"titles:\n  - characters: [Cure Black]\n",
			[]string{"path=titles[0].title"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireParseErr(t, tc.yml, tc.want...)
		})
	}
}

func TestParse_NormalizesNames(t *testing.T) {
	// ブ spelled as フ plus a combining dakuten.
	decomposed := "キュア\u30d5\u3099ラック"
	doc := requireParseOK(t, "characters:\n  - names: [\""+decomposed+"\"]\n    colors: [black, white]\n")
	if got := doc.Characters[0].Names[0]; got != "キュア\u30d6ラック" {
		t.Errorf("name not NFC-normalized: %q", got)
	}
}

func TestParseMany_StopsAtFirstError(t *testing.T) {
	_, err := ParseMany(
		[]byte("- names: [a]\n  colors: [black, white]\n"),
		[]byte("- colors: [black]\n"),
	)
	if err == nil || !strings.Contains(err.Error(), "phase=validate") {
		t.Fatalf("want validation error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Apply
// ---------------------------------------------------------------------------

func TestApply_RegistersAndOverwrites(t *testing.T) {
	reg := cure.Builtin()
	titles := cure.BuiltinTitles()
	doc := requireParseOK(t, `
characters:
  - names: [Cure Black, Cure Gorilla]
    colors: ["#ff0000", "#0000ff"]
titles:
  - title: Futari wa Pretty Cure
    characters: [Cure Gorilla]
  - title: Gorilla PreCure
    characters: [Cure Gorilla]
`)
	if err := Apply(reg, titles, doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	black, _ := reg.Lookup("Cure Black")
	gorilla, ok := reg.Lookup("Cure Gorilla")
	if !ok || black != gorilla {
		t.Fatalf("aliases from one entry must share a gradient")
	}
	if black == cure.CureBlack.Gradient {
		t.Errorf("palette file should overwrite the built-in Cure Black")
	}
	if got := black.At(0).Hex(); got != "#ff0000" {
		t.Errorf("Cure Black At(0): want #ff0000, got %s", got)
	}

	futari, _ := titles.Get("Futari wa Pretty Cure")
	if futari[len(futari)-1] != "Cure Gorilla" {
		t.Errorf("existing title should be appended to, got %v", futari)
	}
	names := titles.Names()
	if names[len(names)-1] != "Gorilla PreCure" {
		t.Errorf("new title should go last, got %v", names)
	}
}

func TestApply_BuildErrors(t *testing.T) {
	reg := cure.NewRegistry()
	doc := requireParseOK(t, "- names: [Solo]\n  colors: [black]\n")
	err := Apply(reg, cure.NewTitles(), doc)
	if !errors.Is(err, gradient.ErrTooFewColors) {
		t.Fatalf("want ErrTooFewColors, got %v", err)
	}
	if !strings.Contains(err.Error(), "phase=build path=characters[0] (Solo)") {
		t.Errorf("error should locate the entry: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("failed entry must not be registered")
	}

	doc = requireParseOK(t, "- names: [Bad]\n  colors: [notacolor, black]\n")
	if err := Apply(reg, cure.NewTitles(), doc); !errors.Is(err, gradient.ErrInvalidColor) {
		t.Errorf("want ErrInvalidColor, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestFromRegistry_RoundTrip(t *testing.T) {
	reg := cure.Builtin()
	titles := cure.BuiltinTitles()

	out, err := Marshal(FromRegistry(reg, titles))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	doc := requireParseOK(t, string(out))

	reg2 := cure.NewRegistry()
	titles2 := cure.NewTitles()
	if err := Apply(reg2, titles2, doc); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if diff := cmp.Diff(reg.Names(), reg2.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(titles.All(), titles2.All()); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
	for _, name := range []string{"Cure Black", "Cure Parfait", "キュアコスモ"} {
		a, _ := reg.Lookup(name)
		b, _ := reg2.Lookup(name)
		if a.Mode() != b.Mode() {
			t.Errorf("%s: mode %v became %v", name, a.Mode(), b.Mode())
		}
		if diff := cmp.Diff(a.Hex(), b.Hex()); diff != "" {
			t.Errorf("%s: seeds (-want +got):\n%s", name, diff)
		}
	}
}
