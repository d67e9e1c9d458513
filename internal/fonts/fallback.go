package fonts

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// fallbackFace draws each rune with the first face that has a glyph for it.
// It is not safe for concurrent use.
type fallbackFace struct {
	fonts []*opentype.Font
	faces []font.Face
	buf   sfnt.Buffer
}

func newFallbackFace(fonts []*opentype.Font, faces []font.Face) *fallbackFace {
	return &fallbackFace{fonts: fonts, faces: faces}
}

func (f *fallbackFace) faceFor(r rune) int {
	for i, ft := range f.fonts {
		if idx, err := ft.GlyphIndex(&f.buf, r); err == nil && idx != 0 {
			return i
		}
	}
	return 0
}

func (f *fallbackFace) Close() error {
	var first error
	for _, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f *fallbackFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return f.faces[f.faceFor(r)].Glyph(dot, r)
}

func (f *fallbackFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return f.faces[f.faceFor(r)].GlyphBounds(r)
}

func (f *fallbackFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.faces[f.faceFor(r)].GlyphAdvance(r)
}

// Kern only applies within a single face.
func (f *fallbackFace) Kern(r0, r1 rune) fixed.Int26_6 {
	i := f.faceFor(r0)
	if i != f.faceFor(r1) {
		return 0
	}
	return f.faces[i].Kern(r0, r1)
}

// Metrics are those of the primary face so baselines stay put when a
// fallback glyph is used.
func (f *fallbackFace) Metrics() font.Metrics {
	return f.faces[0].Metrics()
}
