package imagepkg

import (
	"cmp"
	"slices"

	"github.com/gogpu/gg"

	"github.com/youruser/cardmaker/internal/cards"
)

// Shadow is a blurred, offset copy of the text drawn beneath it.
// The zero value draws nothing.
type Shadow struct {
	Color   gg.RGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
}

func (s Shadow) IsZero() bool { return s.Color.A == 0 }

// Paint describes how one piece of text is filled. It travels with every
// text draw; canvases keep no fill state between calls.
type Paint struct {
	Color gg.RGBA
	// Gradient, when set, runs horizontally across the drawn text and
	// takes precedence over Color.
	Gradient []gg.ColorStop
	Shadow   Shadow
}

func Solid(c gg.RGBA) Paint { return Paint{Color: c} }

var (
	Black = gg.Hex("#000000")
	White = gg.Hex("#FFFFFF")

	rareFill   = gg.Hex("#524100")
	rareShadow = Shadow{Color: gg.Hex("#DCFF32"), OffsetX: 0.4, OffsetY: 1.5, Blur: 3}

	ultraRareStops = []gg.ColorStop{
		{Offset: 0, Color: gg.Hex("#FFDABF")},
		{Offset: 0.14, Color: gg.Hex("#FFF6BF")},
		{Offset: 0.28, Color: gg.Hex("#FFFEBF")},
		{Offset: 0.42, Color: gg.Hex("#D8FFBF")},
		{Offset: 0.56, Color: gg.Hex("#BFFFD4")},
		{Offset: 0.70, Color: gg.Hex("#BFFDFF")},
		{Offset: 0.84, Color: gg.Hex("#BFE4FF")},
		{Offset: 1, Color: gg.Hex("#BFC2FF")},
	}
)

// TitlePaint is the title fill for a rarity.
func TitlePaint(r cards.Rarity) Paint {
	switch r {
	case cards.RarityRare:
		return Paint{Color: rareFill, Shadow: rareShadow}
	case cards.RarityUltraRare:
		stops := make([]gg.ColorStop, len(ultraRareStops))
		copy(stops, ultraRareStops)
		return Paint{Color: Black, Gradient: stops}
	}
	return Solid(Black)
}

// hGradient runs colour stops horizontally from x0 to x1, interpolating
// sRGB components directly. Positions outside the stops take the end colour.
type hGradient struct {
	x0, x1 float64
	stops  []gg.ColorStop
}

func newHGradient(x0, x1 float64, stops []gg.ColorStop) hGradient {
	s := slices.Clone(stops)
	slices.SortStableFunc(s, func(a, b gg.ColorStop) int { return cmp.Compare(a.Offset, b.Offset) })
	return hGradient{x0: x0, x1: x1, stops: s}
}

func (g hGradient) ColorAt(x, _ float64) gg.RGBA {
	if len(g.stops) == 0 {
		return gg.Transparent
	}
	var t float64
	if g.x1 != g.x0 {
		t = (x - g.x0) / (g.x1 - g.x0)
	}
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	i := slices.IndexFunc(g.stops, func(s gg.ColorStop) bool { return s.Offset > t })
	a, b := g.stops[i-1], g.stops[i]
	return a.Color.Lerp(b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Font is a family fallback chain at a pixel size.
type Font struct {
	Families []string
	Size     float64
}

type TextStyle struct {
	Font  Font
	Paint Paint
	Align Align
	// MaxWidth compresses the text horizontally when it would be wider.
	// Zero means unconstrained.
	MaxWidth float64
}
