package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/tdhowe/Ballquest/internal/cards"
)

var testFonts = DefaultFonts()

var (
	artBlue  = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	iconPink = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
)

type testAssets struct{}

func (testAssets) Artwork(*cards.CardSpec) image.Image { return imaging.New(40, 20, artBlue) }

func (testAssets) TypeIcon(cards.SpecialType) image.Image { return imaging.New(16, 16, iconPink) }

// boxItem is a fixed-size item that records where it was drawn.
type boxItem struct {
	w, h  float64
	drawn *[]gg.Point
}

func (b boxItem) Measure(*Canvas) (float64, float64) { return b.w, b.h }

func (b boxItem) Draw(_ *Canvas, x, y float64) {
	*b.drawn = append(*b.drawn, gg.Point{X: x, Y: y})
}
