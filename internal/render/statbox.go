package render

import (
	"github.com/tdhowe/Ballquest/internal/cards"
)

// StatBoxSize is shared by every stat box on a card.
type StatBoxSize struct {
	W, H           float64
	Padding        float64
	HeaderFontSize float64
	ValueFontSize  float64
}

type StatBox struct {
	Label string
	Value string
}

// ValueItem picks the drawable for the box's value from the value's shape.
func (b StatBox) ValueItem(size StatBoxSize, lineWidth float64, assets Assets) Item {
	v := cards.ClassifyStatValue(b.Value)
	switch v.Kind {
	case cards.StatMatch:
		return MatchIcon{Color: v.Color, Count: v.Count, Size: size.ValueFontSize * 1.4, StrokeWidth: lineWidth}
	case cards.StatMultiAppeal:
		return MultiAppealIcon{Count: v.Count, Icon: assets.TypeIcon(v.Type), IconSize: size.ValueFontSize * 0.9}
	}
	return TextItem{Text: b.Value}
}

// Draw strokes the box with its top-left at (x, y), centres the label
// along the top and the value in the space left beneath it.
func (b StatBox) Draw(c *Canvas, x, y float64, size StatBoxSize, lineWidth float64, assets Assets) {
	c.DrawRectangle(x, y, size.W, size.H)
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(lineWidth)
	c.Stroke()

	pad := size.Padding
	region := NewTextRegion(x+pad, y+pad, size.W-pad*2, size.H-pad*2)

	region.Bold = true
	region.HCenter = true
	region.FontSize = size.HeaderFontSize
	region.DrawText(c, b.Label)

	region.Bold = false
	region.VCenter = true
	region.FontSize = size.ValueFontSize
	region.Place(c, b.ValueItem(size, lineWidth, assets))
}
