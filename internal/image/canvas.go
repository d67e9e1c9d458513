package imagepkg

import "image"

// Canvas is the drawing surface the card is composed on. x and y of text
// calls are baseline coordinates; the alignment says which end of the text
// x refers to.
type Canvas interface {
	DrawImage(img image.Image, dst image.Rectangle)
	// DrawImageClipped scales img into dst and only touches pixels in clip.
	DrawImageClipped(img image.Image, dst, clip image.Rectangle)
	FillText(text string, x, y float64, style TextStyle)
	MeasureText(text string, font Font) float64
}
