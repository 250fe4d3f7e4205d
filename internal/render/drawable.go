package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/tdhowe/Ballquest/internal/cards"
)

// Item is anything a TextRegion can place. Draw's (x, y) is the left end
// of the text baseline, so items line up with surrounding text.
type Item interface {
	Measure(c *Canvas) (w, h float64)
	Draw(c *Canvas, x, y float64)
}

// midline is the y that sits halfway up a line of the active font whose
// baseline is y.
func midline(c *Canvas, y float64) float64 {
	return y - c.FontHeight()/4
}

type TextItem struct {
	Text string
}

func (t TextItem) Measure(c *Canvas) (float64, float64) {
	w, _ := c.MeasureString(t.Text)
	return w, c.FontHeight()
}

func (t TextItem) Draw(c *Canvas, x, y float64) {
	c.DrawString(t.Text, x, y)
}

// ImageItem fits an image into a W×H box with one uniform scale.
type ImageItem struct {
	Image image.Image
	W, H  float64
}

func (m ImageItem) scale() float64 {
	b := m.Image.Bounds()
	return math.Min(m.W/float64(b.Dx()), m.H/float64(b.Dy()))
}

func (m ImageItem) Measure(*Canvas) (float64, float64) {
	if m.Image == nil || m.Image.Bounds().Empty() {
		return 0, 0
	}
	s := m.scale()
	b := m.Image.Bounds()
	return float64(b.Dx()) * s, float64(b.Dy()) * s
}

func (m ImageItem) Draw(c *Canvas, x, y float64) {
	w, _ := m.Measure(c)
	m.DrawCentered(c, x+w/2, midline(c, y))
}

// DrawCentered draws the fitted image centred on (cx, cy).
func (m ImageItem) DrawCentered(c *Canvas, cx, cy float64) {
	w, h := m.Measure(c)
	if w < 1 || h < 1 {
		return
	}
	fitted := imaging.Resize(m.Image, int(math.Round(w)), int(math.Round(h)), imaging.Lanczos)
	c.DrawImageAnchored(fitted, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
}

// ShieldIcon is a filled and stroked shield of a card color.
type ShieldIcon struct {
	Color       cards.Color
	W, H        float64
	Fill        color.Color
	StrokeWidth float64
}

func (s ShieldIcon) Measure(*Canvas) (float64, float64) { return s.W, s.H }

func (s ShieldIcon) Draw(c *Canvas, x, y float64) {
	s.DrawBox(c, x, midline(c, y)-s.H/2)
}

// DrawBox draws the shield filling the box whose top-left is (x, y).
func (s ShieldIcon) DrawBox(c *Canvas, x, y float64) {
	shieldPathInBox(c.Context, s.Color, x, y, s.W, s.H)
	if s.Fill != nil {
		c.SetColor(s.Fill)
	} else {
		c.SetRGB(1, 1, 1)
	}
	c.FillPreserve()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(s.StrokeWidth)
	c.Stroke()
}

// MatchIcon is a badge in the card color with a count over its lower half.
type MatchIcon struct {
	Color       cards.Color
	Count       int
	Size        float64
	StrokeWidth float64
}

func (m MatchIcon) shield() ShieldIcon {
	r, g, b := m.Color.RGB()
	return ShieldIcon{
		Color:       m.Color,
		W:           m.Size * 0.9,
		H:           m.Size,
		Fill:        color.NRGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255},
		StrokeWidth: m.StrokeWidth,
	}
}

func (m MatchIcon) Measure(*Canvas) (float64, float64) { return m.Size * 0.9, m.Size }

func (m MatchIcon) Draw(c *Canvas, x, y float64) {
	shield := m.shield()
	top := midline(c, y) - m.Size/2
	shield.DrawBox(c, x, top)

	prev := c.Font()
	c.SetFont(FontStyle{Bold: true, Size: m.Size * 0.45})
	c.DrawStringAnchored(fmt.Sprint(m.Count), x+shield.W/2, top+m.Size*0.58, 0.5, 0.5)
	if prev.Size > 0 {
		c.SetFont(prev)
	}
}

// MultiAppealIcon reads "<N> /" followed by a small type image, packed
// together as one unit.
type MultiAppealIcon struct {
	Count    int
	Icon     image.Image
	IconSize float64
}

func (m MultiAppealIcon) text() string { return fmt.Sprintf("%d /", m.Count) }

func (m MultiAppealIcon) parts(c *Canvas) (text TextItem, gap float64, icon ImageItem) {
	text = TextItem{Text: m.text()}
	gap, _ = c.MeasureString(" ")
	icon = ImageItem{Image: m.Icon, W: m.IconSize, H: m.IconSize}
	return text, gap, icon
}

func (m MultiAppealIcon) Measure(c *Canvas) (float64, float64) {
	text, gap, icon := m.parts(c)
	tw, th := text.Measure(c)
	iw, ih := icon.Measure(c)
	return tw + gap + iw, math.Max(th, ih)
}

func (m MultiAppealIcon) Draw(c *Canvas, x, y float64) {
	text, gap, icon := m.parts(c)
	tw, _ := text.Measure(c)
	text.Draw(c, x, y)
	icon.Draw(c, x+tw+gap, y)
}
