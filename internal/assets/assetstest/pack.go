// Package assetstest builds small in-memory asset packs for tests.
package assetstest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing/fstest"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/cards"
)

var (
	TemplateColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	AttributeColor = color.NRGBA{R: 0xff, A: 0xff}
	PipColor       = color.NRGBA{B: 0xff, A: 0xff}
	ArrowColor     = color.NRGBA{G: 0xff, A: 0xff}
	FoilColor      = color.NRGBA{R: 0xff, G: 0xd7, A: 0xff}
	ArtColor       = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

var (
	Templates  = []string{"Normal", "Effect", "Xyz", "Link", "NormalPendulum", "XyzPendulum", "LinkPendulum", "Spell", "Trap"}
	Attributes = []string{"DARK", "LIGHT", "Spell", "Trap"}
)

// EncodePNG encodes a solid w x h image.
func EncodePNG(w, h int, c color.Color) []byte {
	return encode(imaging.New(w, h, c))
}

// HugePNG returns a tiny PNG whose header declares w x h pixels. Only the
// header is valid; decoding the pixels fails.
func HugePNG(w, h uint32) []byte {
	b := EncodePNG(1, 1, ArtColor)
	// Signature, then the IHDR chunk: length, type, 13 data bytes, CRC.
	binary.BigEndian.PutUint32(b[16:], w)
	binary.BigEndian.PutUint32(b[20:], h)
	binary.BigEndian.PutUint32(b[29:], crc32.ChecksumIEEE(b[12:29]))
	return b
}

func encode(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// template is a 100x145 white frame with a transparent window where the
// artwork shows through, a tenth of the card's size.
func template() []byte {
	img := imaging.New(100, 145, TemplateColor)
	for y := 30; y < 95; y++ {
		for x := 15; x < 85; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	return encode(img)
}

// Pack returns a complete asset pack for the "en" language.
func Pack() fstest.MapFS {
	fsys := fstest.MapFS{}
	add := func(path string, data []byte) {
		fsys[path] = &fstest.MapFile{Data: data}
	}
	for _, t := range Templates {
		add(assets.TemplatePath("en", t), template())
	}
	for _, a := range Attributes {
		add(assets.AttributePath("en", a), EncodePNG(20, 20, AttributeColor))
	}
	add(assets.LevelPath, EncodePNG(20, 20, PipColor))
	add(assets.RankPath, EncodePNG(20, 20, PipColor))
	for _, a := range cards.AllLinkArrows {
		add(assets.ArrowPath(a), EncodePNG(20, 20, ArrowColor))
	}
	add(assets.FoilPath, EncodePNG(20, 20, FoilColor))
	add(assets.DefaultArt, EncodePNG(40, 40, ArtColor))
	return fsys
}

// Resolver serves Pack.
func Resolver() assets.FSResolver {
	return assets.FSResolver{FS: Pack()}
}
