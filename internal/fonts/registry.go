// Package fonts resolves font family names to faces with a fallback chain.
//
// Unknown family names are skipped. The registry's default family is
// appended to every chain, and a rune no face can draw falls back to the
// first face's .notdef glyph.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
)

// Special-purpose families used by the card renderer.
const (
	FamilyCardKey   = "cardkey"
	FamilyStats     = "stats"
	FamilyLink      = "link"
	FamilySerifBold = "serif-bold"

	DefaultFamily = "Go"
)

// Registry maps family names to parsed fonts. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
}

// NewRegistry returns a registry preloaded with the embedded Go fonts and
// aliases for the special-purpose families.
func NewRegistry() *Registry {
	r := &Registry{fonts: map[string]*opentype.Font{}}
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{DefaultFamily, goregular.TTF},
		{"Go Bold", gobold.TTF},
		{"Go Medium", gomedium.TTF},
		{"Go Italic", goitalic.TTF},
		{"Go Mono", gomono.TTF},
		{"Go Smallcaps", gosmallcaps.TTF},
	}
	for _, b := range builtin {
		if err := r.Register(b.name, b.ttf); err != nil {
			// The embedded fonts are known good.
			panic(err)
		}
	}
	for alias, target := range map[string]string{
		FamilyCardKey:   "Go Mono",
		FamilyStats:     "Go Medium",
		FamilyLink:      "Go Bold",
		FamilySerifBold: "Go Bold",
	} {
		r.fonts[alias] = r.fonts[target]
	}
	return r
}

// Register parses a TrueType or OpenType font and stores it under name,
// replacing any previous family of that name.
func (r *Registry) Register(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	r.mu.Lock()
	r.fonts[name] = f
	r.mu.Unlock()
	return nil
}

// RegisterFile registers the font file at path under name.
func (r *Registry) RegisterFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %q: %w", name, err)
	}
	return r.Register(name, data)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fonts[name]
	return ok
}

// chain resolves families to fonts, dropping unknown and duplicate entries
// and appending the default family.
func (r *Registry) chain(families []string) []*opentype.Font {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[*opentype.Font]bool{}
	var out []*opentype.Font
	names := append(append([]string(nil), families...), DefaultFamily)
	for _, name := range names {
		f, ok := r.fonts[name]
		if !ok || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// MaxFaceSize is the largest pixel size Face accepts.
const MaxFaceSize = 1024

// ErrFaceSize reports a face size outside (0, MaxFaceSize].
var ErrFaceSize = errors.New("invalid font size")

// Face builds a face of the given pixel size for the family chain.
// The caller must Close it.
func (r *Registry) Face(families []string, size float64) (font.Face, error) {
	if !(size > 0 && size <= MaxFaceSize) {
		return nil, fmt.Errorf("%w: %vpx", ErrFaceSize, size)
	}
	fs := r.chain(families)
	faces := make([]font.Face, 0, len(fs))
	for _, f := range fs {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	if len(faces) == 1 {
		return faces[0], nil
	}
	return newFallbackFace(fs, faces), nil
}
