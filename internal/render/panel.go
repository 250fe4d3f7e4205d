package render

import (
	"image"

	"github.com/tdhowe/Ballquest/internal/cards"
)

// PanelGeometry is the size every image panel on a card shares.
type PanelGeometry struct {
	W, H            float64
	CornerRadius    float64
	LineWidth       float64
	ShieldPadding   float64
	WatermarkStroke float64
}

// ImagePanel is the card-colored artwork frame with a shield watermark.
type ImagePanel struct {
	Color   cards.Color
	Artwork image.Image
}

// Draw paints, in order: the color fill, the outline, the watermark and
// the artwork. Each layer covers the one before it.
func (p ImagePanel) Draw(c *Canvas, x, y float64, g PanelGeometry) {
	RoundedRectPath(c.Context, x, y, g.W, g.H, g.CornerRadius)
	c.SetRGB(p.Color.RGB())
	c.Fill()

	RoundedRectPath(c.Context, x, y, g.W, g.H, g.CornerRadius)
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(g.LineWidth)
	c.Stroke()

	pad := g.ShieldPadding
	watermark := ShieldIcon{
		Color:       p.Color,
		W:           g.W - pad*2,
		H:           g.H - pad*2,
		StrokeWidth: g.WatermarkStroke,
	}
	watermark.DrawBox(c, x+pad, y+pad)

	if p.Artwork != nil {
		art := ImageItem{Image: p.Artwork, W: g.W / 2, H: g.H / 2}
		art.DrawCentered(c, x+g.W/2, y+g.H/2)
	}
}
