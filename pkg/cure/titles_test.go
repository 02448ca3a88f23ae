package cure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTitles_InsertionOrder(t *testing.T) {
	tt := NewTitles()
	tt.Add("b", "Cure Black")
	tt.Add("a", "Cure White")
	tt.Add("c")
	if diff := cmp.Diff([]string{"b", "a", "c"}, tt.Names()); diff != "" {
		t.Errorf("title order (-want +got):\n%s", diff)
	}
}

func TestTitles_AddExistingAppends(t *testing.T) {
	tt := NewTitles()
	tt.Add("x", "one")
	tt.Add("y", "other")
	tt.Add("x", "two", "three")

	got, ok := tt.Get("x")
	if !ok {
		t.Fatal("Get(x): not found")
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, tt.Names()); diff != "" {
		t.Errorf("existing title must keep its position (-want +got):\n%s", diff)
	}
}

func TestTitles_GetMiss(t *testing.T) {
	tt := BuiltinTitles()
	if names, ok := tt.Get("*** PreCure"); ok || names != nil {
		t.Errorf("Get(unknown): want nil,false; got %v,%v", names, ok)
	}
}

func TestTitles_ReturnsCopies(t *testing.T) {
	tt := NewTitles()
	tt.Add("x", "one")
	got, _ := tt.Get("x")
	got[0] = "mutated"
	all := tt.All()
	all[0].Characters[0] = "mutated"
	again, _ := tt.Get("x")
	if again[0] != "one" {
		t.Errorf("callers must not be able to mutate the table, got %q", again[0])
	}
}

func TestBuiltinTitles(t *testing.T) {
	tt := BuiltinTitles()
	if tt.Len() != 16 {
		t.Errorf("want 16 titles, got %d", tt.Len())
	}
	names := tt.Names()
	if names[0] != "Futari wa Pretty Cure" || names[len(names)-1] != "Star Twinkle PreCure" {
		t.Errorf("unexpected first/last titles: %q .. %q", names[0], names[len(names)-1])
	}
	maxHeart, _ := tt.Get("Futari wa Pretty Cure Max Heart")
	if diff := cmp.Diff([]string{"Cure Black", "Cure White", "Shiny Luminous"}, maxHeart); diff != "" {
		t.Errorf("Max Heart members (-want +got):\n%s", diff)
	}
}

func TestBuiltinTitles_MembersResolve(t *testing.T) {
	reg := Builtin()
	for _, title := range BuiltinTitles().All() {
		for _, name := range title.Characters {
			if _, ok := reg.Lookup(name); !ok {
				t.Errorf("%s: %q has no gradient", title.Name, name)
			}
		}
	}
}
