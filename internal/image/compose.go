package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	sheetMargin  = 48
	sheetGap     = 8
	sheetColumns = 5
)

// SheetCardWidth is the default width of a card on a contact sheet.
const SheetCardWidth = 215

// ComposeSheet lays rendered cards out on a grid for previewing a batch.
func ComposeSheet(cards []image.Image, columns, cardWidth int) *image.NRGBA {
	if columns <= 0 {
		columns = sheetColumns
	}
	if cardWidth <= 0 {
		cardWidth = SheetCardWidth
	}
	cardHeight := cardWidth * CanvasHeight / CanvasWidth
	cols := min(columns, len(cards))
	rows := (len(cards) + columns - 1) / columns
	w := 2*sheetMargin + cols*cardWidth + max(cols-1, 0)*sheetGap
	h := 2*sheetMargin + rows*cardHeight + max(rows-1, 0)*sheetGap
	canvas := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	for i, c := range cards {
		x := sheetMargin + (i%columns)*(cardWidth+sheetGap)
		y := sheetMargin + (i/columns)*(cardHeight+sheetGap)
		t := imaging.Resize(c, cardWidth, cardHeight, imaging.Lanczos)
		canvas = imaging.Overlay(canvas, t, image.Pt(x, y), 1.0)
	}
	return canvas
}

// Thumbnail scales img to width, keeping the aspect ratio. A width of
// zero or one at least as large as the image returns img unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Format is an output encoding.
type Format struct {
	Name        string
	ContentType string
	format      imaging.Format
}

var (
	FormatPNG  = Format{Name: "png", ContentType: "image/png", format: imaging.PNG}
	FormatJPEG = Format{Name: "jpeg", ContentType: "image/jpeg", format: imaging.JPEG}
)

// ParseFormat accepts png, jpeg and jpg; empty means png.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return Format{}, fmt.Errorf("unsupported image format %q", name)
}

// Encode writes img in the given format. JPEG flattens transparency onto
// white.
func Encode(w io.Writer, img image.Image, f Format) error {
	if f.format == imaging.JPEG {
		bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		img = imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(92))
	}
	return imaging.Encode(w, img, f.format)
}
