package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
)

func TestComposeSheet(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	cards := []image.Image{
		imaging.New(1000, 1450, red),
		imaging.New(1000, 1450, blue),
		imaging.New(1000, 1450, red),
	}
	sheet := ComposeSheet(cards, 2, 100)

	if b := sheet.Bounds(); b != image.Rect(0, 0, 304, 394) {
		t.Fatalf("bounds = %v", b)
	}
	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{1, 1, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}},
		{98, 118, red},
		{206, 118, blue},
		{98, 271, red},
		{206, 271, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}},
	}
	for _, c := range checks {
		if got := sheet.NRGBAAt(c.x, c.y); !closeTo(got, c.want) {
			t.Errorf("(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestComposeSheetDefaults(t *testing.T) {
	sheet := ComposeSheet([]image.Image{imaging.New(10, 10, color.Black)}, 0, 0)
	if got := sheet.Bounds().Dx(); got != 2*sheetMargin+SheetCardWidth {
		t.Errorf("width = %d", got)
	}
}

func TestThumbnail(t *testing.T) {
	img := imaging.New(1000, 1450, color.White)
	if got := Thumbnail(img, 200).Bounds(); got != image.Rect(0, 0, 200, 290) {
		t.Errorf("Thumbnail(200) = %v", got)
	}
	if got := Thumbnail(img, 0); got != image.Image(img) {
		t.Error("Thumbnail(0) scaled the image")
	}
	if got := Thumbnail(img, 2000); got != image.Image(img) {
		t.Error("Thumbnail does not upscale")
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": FormatPNG, ".png": FormatPNG, "JPG": FormatJPEG, ".jpeg": FormatJPEG}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat(gif) succeeded")
	}
}

func TestEncode(t *testing.T) {
	img := imaging.New(20, 20, color.Transparent)

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("png: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, FormatJPEG); err != nil {
		t.Fatal(err)
	}
	out, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := out.At(10, 10).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("transparent pixel flattened to (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}
}

func closeTo(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
