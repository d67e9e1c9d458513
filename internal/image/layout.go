package imagepkg

import (
	"image"

	"github.com/youruser/cardmaker/internal/cards"
)

// Every coordinate below is in pixels on the fixed card surface.
const (
	CanvasWidth  = 1000
	CanvasHeight = 1450
)

func box(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

var (
	artBox         = box(123, 268, 754, 754)
	pendulumArtBox = box(69, 255, 862, 647)
	attributeBox   = box(840, 68, 90, 90)
	foilBox        = box(928, 1371, 44, 46)
)

// Aspect ratio at or below which artwork is fitted to the box width.
const (
	artRatio         = 1.0
	pendulumArtRatio = 1.33
)

const (
	titleX        = 77
	titleY        = 140
	titleSize     = 57
	titleMaxWidth = 750

	pipSize     = 58
	pipY        = 181
	pipStep     = 63
	levelStartX = 820
	rankStartX  = 122 + 15

	codeX    = 54
	codeY    = 1405
	codeSize = 22

	statY        = 1353
	statMaxWidth = 95
	atkRight     = 719
	defRight     = 920
	linkRight    = 917
	statSize     = 38
	infinitySize = 32
	linkSize     = 33

	scaleY        = 1040
	blueScaleX    = 106
	redScaleX     = 895
	scaleSize     = 55
	scaleMaxWidth = 60

	pendulumTextX     = 160
	pendulumTextY     = 920
	pendulumTextWidth = 660

	effectTextX     = 75
	effectTextY     = 1095
	effectTextWidth = 825
)

// Link arrow placement, indexed by cards.LinkArrow.
var (
	linkArrowBoxes = [...]image.Rectangle{
		cards.TopLeft:     box(94, 239, 88, 88),
		cards.Top:         box(416, 218, 168, 56),
		cards.TopRight:    box(818, 239, 88, 88),
		cards.Left:        box(93, 567, 56, 168),
		cards.Right:       box(851, 567, 56, 168),
		cards.BottomLeft:  box(94, 963, 88, 88),
		cards.Bottom:      box(416, 1004, 168, 56),
		cards.BottomRight: box(818, 963, 88, 88),
	}
	pendulumLinkArrowBoxes = [...]image.Rectangle{
		cards.TopLeft:     box(40, 226, 88, 88),
		cards.Top:         box(416, 205, 168, 56),
		cards.TopRight:    box(872, 226, 88, 88),
		cards.Left:        box(22, 495, 56, 168),
		cards.Right:       box(922, 495, 56, 168),
		cards.BottomLeft:  box(40, 850, 88, 88),
		cards.Bottom:      box(416, 880, 168, 56),
		cards.BottomRight: box(872, 850, 88, 88),
	}
)

// ArrowBox returns where the icon for a is drawn.
func ArrowBox(a cards.LinkArrow, pendulum bool) image.Rectangle {
	if pendulum {
		return pendulumLinkArrowBoxes[a]
	}
	return linkArrowBoxes[a]
}

// ArtBox returns the artwork window and its fit threshold.
func ArtBox(pendulum bool) (image.Rectangle, float64) {
	if pendulum {
		return pendulumArtBox, pendulumArtRatio
	}
	return artBox, artRatio
}

// PipX is the left edge of the i-th level or rank pip. Levels run right to
// left, ranks left to right.
func PipX(i int, rank bool) int {
	if rank {
		return rankStartX + i*pipStep
	}
	return levelStartX - i*pipStep
}
