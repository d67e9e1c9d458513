package fonts

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

func advance(t *testing.T, face font.Face, r rune) float64 {
	t.Helper()
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		t.Fatalf("no advance for %q", r)
	}
	return float64(adv) / 64
}

func mustFace(t *testing.T, r *Registry, families ...string) font.Face {
	t.Helper()
	face, err := r.Face(families, 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { face.Close() })
	return face
}

func TestBuiltinFamilies(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{DefaultFamily, "Go Bold", "Go Mono", FamilyCardKey, FamilyStats, FamilyLink, FamilySerifBold} {
		if !r.Has(name) {
			t.Errorf("missing family %q", name)
		}
	}
}

func TestUnknownFamilyFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	got := mustFace(t, r, "Comic Sans", "Papyrus")
	want := mustFace(t, r, DefaultFamily)
	if _, ok := got.(*fallbackFace); ok {
		t.Error("chain of unknown families should resolve to the default face alone")
	}
	if advance(t, got, 'W') != advance(t, want, 'W') {
		t.Error("advance differs from the default family")
	}
}

func TestChainPrefersFirstFamily(t *testing.T) {
	r := NewRegistry()
	mono := mustFace(t, r, "Go Mono")
	chained := mustFace(t, r, "Nope", FamilyCardKey, "Go Bold")
	if _, ok := chained.(*fallbackFace); !ok {
		t.Fatalf("Face() = %T, want a fallback face", chained)
	}
	for _, c := range "i0W" {
		if advance(t, chained, c) != advance(t, mono, c) {
			t.Errorf("%q not drawn with the first family", c)
		}
	}
	if chained.Metrics() != mono.Metrics() {
		t.Error("metrics are not those of the primary face")
	}
}

func TestChainDeduplicates(t *testing.T) {
	r := NewRegistry()
	fs := r.chain([]string{"Go Mono", FamilyCardKey, DefaultFamily})
	if len(fs) != 2 {
		t.Errorf("chain has %d fonts, want 2", len(fs))
	}
}

func TestChainDoesNotMutateInput(t *testing.T) {
	r := NewRegistry()
	families := make([]string, 1, 4)
	families[0] = "Go Bold"
	r.chain(families)
	if got := families[:2][1]; got != "" {
		t.Errorf("caller's backing array written: %q", got)
	}
}

func TestMissingGlyphUsesPrimaryFace(t *testing.T) {
	r := NewRegistry()
	face := mustFace(t, r, "Go Mono")
	chained := mustFace(t, r, "Go Mono", "Go Bold")
	ff := chained.(*fallbackFace)
	if i := ff.faceFor('\uE000'); i != 0 {
		t.Errorf("faceFor(private use) = %d, want 0", i)
	}
	if got, want := advance(t, chained, '\uE000'), advance(t, face, '\uE000'); got != want {
		t.Errorf("notdef advance = %v, want %v", got, want)
	}
}

func TestFaceRejectsBadSizes(t *testing.T) {
	r := NewRegistry()
	for _, size := range []float64{0, -3, math.NaN(), math.Inf(1), MaxFaceSize + 1} {
		face, err := r.Face([]string{FamilyStats}, size)
		if !errors.Is(err, ErrFaceSize) {
			t.Errorf("Face(%v) err = %v, want ErrFaceSize", size, err)
		}
		if face != nil {
			t.Errorf("Face(%v) returned a face", size)
		}
	}
	face, err := r.Face([]string{FamilyStats}, MaxFaceSize)
	if err != nil {
		t.Fatalf("Face(MaxFaceSize): %v", err)
	}
	face.Close()
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("Broken", []byte("not a font")); err == nil {
		t.Error("Register accepted garbage")
	}
	if r.Has("Broken") {
		t.Error("failed font was registered")
	}
	if err := r.Register("Custom", gomono.TTF); err != nil {
		t.Fatal(err)
	}
	if !r.Has("Custom") {
		t.Error("Custom not registered")
	}
	if err := r.RegisterFile("Missing", filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("RegisterFile accepted a missing file")
	}
}
