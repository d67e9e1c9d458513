package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/cardmaker/internal/fonts"
)

// textPad surrounds text masks so side bearings and shadow blur are not cut.
const textPad = 8

// rasterCanvas draws onto an in-memory card surface. The first font error
// is kept and reported by Err; drawing calls after it are no-ops for text.
type rasterCanvas struct {
	dst   *image.NRGBA
	fonts *fonts.Registry
	faces map[string]font.Face
	err   error
}

func newRasterCanvas(reg *fonts.Registry) *rasterCanvas {
	return &rasterCanvas{
		dst:   imaging.New(CanvasWidth, CanvasHeight, color.Transparent),
		fonts: reg,
		faces: map[string]font.Face{},
	}
}

func (c *rasterCanvas) Image() *image.NRGBA { return c.dst }

func (c *rasterCanvas) Err() error { return c.err }

// Close releases the font faces opened for this surface.
func (c *rasterCanvas) Close() error {
	for _, f := range c.faces {
		f.Close()
	}
	c.faces = nil
	return nil
}

func (c *rasterCanvas) DrawImage(img image.Image, dst image.Rectangle) {
	c.DrawImageClipped(img, dst, dst)
}

func (c *rasterCanvas) DrawImageClipped(img image.Image, dst, clip image.Rectangle) {
	if img == nil || dst.Empty() {
		return
	}
	clip = clip.Intersect(c.dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := c.dst.SubImage(clip).(*image.NRGBA)
	xdraw.CatmullRom.Scale(sub, dst, img, img.Bounds(), xdraw.Over, nil)
}

func (c *rasterCanvas) face(f Font) font.Face {
	if c.err != nil {
		return nil
	}
	key := fmt.Sprintf("%s@%g", strings.Join(f.Families, "\x00"), f.Size)
	if face, ok := c.faces[key]; ok {
		return face
	}
	face, err := c.fonts.Face(f.Families, f.Size)
	if err != nil {
		c.err = err
		return nil
	}
	c.faces[key] = face
	return face
}

func (c *rasterCanvas) MeasureText(s string, f Font) float64 {
	face := c.face(f)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s))
}

func (c *rasterCanvas) FillText(s string, x, y float64, st TextStyle) {
	if s == "" {
		return
	}
	face := c.face(st.Font)
	if face == nil {
		return
	}
	width := fixedToFloat(font.MeasureString(face, s))
	scale := 1.0
	if st.MaxWidth > 0 && width > st.MaxWidth {
		scale = st.MaxWidth / width
	}
	drawn := width * scale
	left := x
	switch st.Align {
	case AlignRight:
		left = x - drawn
	case AlignCenter:
		left = x - drawn/2
	}

	pad := textPad + int(math.Ceil(st.Paint.Shadow.Blur))
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, int(math.Ceil(width))+2*pad, ascent+m.Descent.Ceil()+2*pad))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pad, pad+ascent),
	}
	d.DrawString(s)

	if scale < 1 {
		squeezed := image.NewAlpha(image.Rect(0, 0, int(math.Ceil(float64(mask.Bounds().Dx())*scale)), mask.Bounds().Dy()))
		xdraw.BiLinear.Scale(squeezed, squeezed.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
		mask = squeezed
	}

	origin := image.Pt(int(math.Round(left-float64(pad)*scale)), int(math.Round(y))-ascent-pad)
	r := mask.Bounds().Add(origin)

	if !st.Paint.Shadow.IsZero() {
		c.drawShadow(mask, r, st.Paint.Shadow)
	}
	draw.DrawMask(c.dst, r, paintSource(st.Paint, left, drawn, r), r.Min, mask, image.Point{}, draw.Over)
}

func (c *rasterCanvas) drawShadow(mask *image.Alpha, r image.Rectangle, s Shadow) {
	layer := image.NewNRGBA(mask.Bounds())
	draw.DrawMask(layer, layer.Bounds(), image.NewUniform(s.Color.Color()), image.Point{}, mask, image.Point{}, draw.Src)
	blurred := imaging.Blur(layer, s.Blur/2)
	off := image.Pt(int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY)))
	draw.Draw(c.dst, r.Add(off), blurred, image.Point{}, draw.Over)
}

// paintSource returns the fill image in surface coordinates.
func paintSource(p Paint, left, width float64, r image.Rectangle) image.Image {
	if len(p.Gradient) == 0 {
		return image.NewUniform(p.Color.Color())
	}
	return brushImage{brush: newHGradient(left, left+width, p.Gradient), bounds: r}
}

// brushImage samples a brush as an image.
type brushImage struct {
	brush  interface{ ColorAt(x, y float64) gg.RGBA }
	bounds image.Rectangle
}

func (b brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b brushImage) Bounds() image.Rectangle { return b.bounds }

func (b brushImage) At(x, y int) color.Color {
	return b.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
