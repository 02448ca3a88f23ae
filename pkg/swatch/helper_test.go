package swatch

import (
	"errors"
	"strings"
	"testing"

	"cure-colormap/pkg/cure"
	"cure-colormap/pkg/gradient"

	"github.com/google/go-cmp/cmp"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// recorder is a Surface that logs every call.
type recorder struct {
	calls  []string
	strips [][]colorful.Color
	failOn string
}

func (r *recorder) Begin(category string, rows int) error {
	r.calls = append(r.calls, "begin "+category+" "+strings.Repeat("#", rows))
	if r.failOn == "begin" {
		return errBoom
	}
	return nil
}

func (r *recorder) Strip(label string, colors []colorful.Color) error {
	r.calls = append(r.calls, "strip "+label)
	r.strips = append(r.strips, colors)
	if r.failOn == "strip" {
		return errBoom
	}
	return nil
}

func (r *recorder) End() error {
	r.calls = append(r.calls, "end")
	if r.failOn == "end" {
		return errBoom
	}
	return nil
}

var errBoom = errors.New("boom")

func newTestHelper(t *testing.T, opts ...Option) (*Helper, *recorder) {
	t.Helper()
	reg := cure.NewRegistry()
	for _, name := range []string{"A", "B", "C"} {
		if _, err := reg.Register(gradient.Continuous, []string{"black", "white"}, name); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	titles := cure.NewTitles()
	titles.Add("first", "A", "missing", "B")
	titles.Add("empty", "nobody")
	titles.Add("second", "C")
	rec := &recorder{}
	return NewHelper(reg, titles, rec, opts...), rec
}

func TestRenderCategory_SkipsMissingNames(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderCategory("cat", []string{"A", "ghost", "C"}); err != nil {
		t.Fatalf("RenderCategory: %v", err)
	}
	want := []string{"begin cat ##", "strip A", "strip C", "end"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRenderCategory_NothingResolves(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderCategory("cat", []string{"ghost", "phantom"}); err != nil {
		t.Fatalf("RenderCategory: %v", err)
	}
	if err := h.RenderCategory("cat", nil); err != nil {
		t.Fatalf("RenderCategory(nil): %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("no figure expected, got %v", rec.calls)
	}
}

func TestRenderTitles_EmptyAndUnknown(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderTitles(nil); err != nil {
		t.Fatalf("RenderTitles(nil): %v", err)
	}
	if err := h.RenderTitles([]string{"UnknownTitle"}); err != nil {
		t.Fatalf("RenderTitles(UnknownTitle): %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("no drawing expected, got %v", rec.calls)
	}
}

func TestRenderTitles_GivenOrder(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderTitles([]string{"second", "UnknownTitle", "first"}); err != nil {
		t.Fatalf("RenderTitles: %v", err)
	}
	want := []string{
		"begin second #", "strip C", "end",
		"begin first ##", "strip A", "strip B", "end",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRenderAll_InsertionOrder(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderAll(); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	want := []string{
		"begin first ##", "strip A", "strip B", "end",
		"begin second #", "strip C", "end",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRenderCategory_Samples(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderCategory("cat", []string{"A"}); err != nil {
		t.Fatalf("RenderCategory: %v", err)
	}
	if got := len(rec.strips[0]); got != DefaultSamples {
		t.Errorf("default samples: want %d, got %d", DefaultSamples, got)
	}

	h, rec = newTestHelper(t, WithSamples(5))
	if err := h.RenderCategory("cat", []string{"A"}); err != nil {
		t.Fatalf("RenderCategory: %v", err)
	}
	colors := rec.strips[0]
	if len(colors) != 5 {
		t.Fatalf("WithSamples(5): got %d colors", len(colors))
	}
	if colors[0].Hex() != "#000000" || colors[4].Hex() != "#ffffff" {
		t.Errorf("strip endpoints: got %s .. %s", colors[0].Hex(), colors[4].Hex())
	}
}

func TestRenderCategory_ReusesSamples(t *testing.T) {
	h, rec := newTestHelper(t)
	if err := h.RenderCategory("x", []string{"A"}); err != nil {
		t.Fatal(err)
	}
	if err := h.RenderCategory("y", []string{"A"}); err != nil {
		t.Fatal(err)
	}
	if &rec.strips[0][0] != &rec.strips[1][0] {
		t.Errorf("same gradient should reuse its sampled strip")
	}
}

func TestRenderCategory_SurfaceErrors(t *testing.T) {
	for _, stage := range []string{"begin", "strip", "end"} {
		t.Run(stage, func(t *testing.T) {
			h, rec := newTestHelper(t)
			rec.failOn = stage
			err := h.RenderCategory("cat", []string{"A"})
			if !errors.Is(err, errBoom) {
				t.Fatalf("want wrapped errBoom, got %v", err)
			}
			if !strings.Contains(err.Error(), `category "cat"`) {
				t.Errorf("error should name the category: %v", err)
			}
		})
	}
}

func TestRenderAll_StopsOnError(t *testing.T) {
	h, rec := newTestHelper(t)
	rec.failOn = "end"
	if err := h.RenderAll(); !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	if rec.calls[len(rec.calls)-1] != "end" || strings.Contains(strings.Join(rec.calls, ","), "second") {
		t.Errorf("rendering should stop at the first failure: %v", rec.calls)
	}
}

func TestRenderAll_Builtin(t *testing.T) {
	rec := &recorder{}
	h := NewHelper(cure.Builtin(), cure.BuiltinTitles(), rec, WithSamples(8))
	if err := h.RenderAll(); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	begins := 0
	for _, c := range rec.calls {
		if strings.HasPrefix(c, "begin ") {
			begins++
		}
	}
	if begins != cure.BuiltinTitles().Len() {
		t.Errorf("want one figure per title (%d), got %d", cure.BuiltinTitles().Len(), begins)
	}
}
