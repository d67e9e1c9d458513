package imagepkg

import (
	"image"
	"math"
)

// CoverRect returns the rectangle an image of size src is scaled into so
// that it covers box. Artwork whose width/height is at most threshold is
// fitted to the box width and centred vertically; wider artwork is fitted
// to the box height and centred horizontally. Whatever falls outside box
// is clipped by the caller.
func CoverRect(src image.Point, b image.Rectangle, threshold float64) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return b
	}
	bw, bh := b.Dx(), b.Dy()
	ratio := float64(src.X) / float64(src.Y)
	if ratio <= threshold {
		h := int(math.Round(float64(bw) / ratio))
		y := b.Min.Y + (bh-h)/2
		return image.Rect(b.Min.X, y, b.Max.X, y+h)
	}
	w := int(math.Round(float64(bh) * ratio))
	x := b.Min.X + (bw-w)/2
	return image.Rect(x, b.Min.Y, x+w, b.Max.Y)
}
