package render

import (
	"image"
	"strings"

	"github.com/tdhowe/Ballquest/internal/cards"
)

// Assets supplies the images a card draws besides its text.
type Assets interface {
	Artwork(spec *cards.CardSpec) image.Image
	TypeIcon(t cards.SpecialType) image.Image
}

// LayoutConfig holds the card dimensions and the constants every region
// is derived from. It is passed to each render, so cards with different
// configs can be drawn at the same time.
type LayoutConfig struct {
	Width  int
	Height int

	Border          float64 // black margin around the card
	CornerRadius    float64
	LineWidth       float64
	Padding         float64 // space between boxes
	StatColumnWidth float64
	StatPadding     float64

	DescHeight    float64
	DescIconSize  float64
	DetailPadding float64

	TitleFontSize      float64
	DescFontSize       float64
	DetailFontSize     float64
	FlavorFontSize     float64
	StatHeaderFontSize float64
	StatValueFontSize  float64

	WatermarkStroke float64
}

func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Width:              750,
		Height:             1050,
		Border:             4,
		CornerRadius:       15,
		LineWidth:          3,
		Padding:            12,
		StatColumnWidth:    130,
		StatPadding:        20,
		DescHeight:         70,
		DescIconSize:       36,
		DetailPadding:      30,
		TitleFontSize:      42,
		DescFontSize:       30,
		DetailFontSize:     36,
		FlavorFontSize:     30,
		StatHeaderFontSize: 24,
		StatValueFontSize:  36,
		WatermarkStroke:    1.5,
	}
}

// Rect is an axis-aligned box in card pixels.
type Rect struct {
	X, Y, W, H float64
}

// Layout is every region of a card, computed from a LayoutConfig alone.
type Layout struct {
	Border      Rect
	Header      Rect
	Panel       Rect
	StatColumn  Rect
	StatBox     StatBoxSize
	Slot        Rect
	Description Rect
	Detail      Rect
}

// ComputeLayout derives all region rectangles top to bottom.
func ComputeLayout(cfg LayoutConfig) Layout {
	w, h := float64(cfg.Width), float64(cfg.Height)
	pad := cfg.Padding

	var l Layout
	l.Border = Rect{cfg.Border, cfg.Border, w - 2*cfg.Border, h - 2*cfg.Border}
	l.Header = Rect{pad, pad, w - pad*2 - cfg.StatColumnWidth, h / 14}
	l.Panel = Rect{pad, l.Header.Y + l.Header.H + pad, l.Header.W, h * 4 / 7}

	// the column splits into five stat cells plus the slot indicator
	colH := l.Panel.Y + l.Panel.H + pad
	l.StatColumn = Rect{w - cfg.StatColumnWidth, 0, cfg.StatColumnWidth, colH}
	l.StatBox = StatBoxSize{
		W:              cfg.StatColumnWidth,
		H:              colH / (cards.MaxStats + 1),
		Padding:        cfg.StatPadding,
		HeaderFontSize: cfg.StatHeaderFontSize,
		ValueFontSize:  cfg.StatValueFontSize,
	}
	size := l.StatBox.H - pad*2
	l.Slot = Rect{
		l.StatColumn.X + (cfg.StatColumnWidth-size)/2,
		l.StatBox.H*cards.MaxStats + pad,
		size, size,
	}

	l.Description = Rect{pad, l.Panel.Y + l.Panel.H + pad, w - pad*2, cfg.DescHeight}
	detailY := l.Description.Y + l.Description.H + pad
	l.Detail = Rect{pad, detailY, l.Description.W, h - detailY - pad}
	return l
}

// Compose renders spec onto a new canvas. It only reads spec.
func Compose(spec *cards.CardSpec, fonts *Fonts, assets Assets, cfg LayoutConfig) (image.Image, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	l := ComputeLayout(cfg)

	c := NewCanvas(cfg.Width, cfg.Height, fonts)
	defer c.Close()

	c.SetRGB(0, 0, 0)
	c.Clear()

	RoundedRectPath(c.Context, l.Border.X, l.Border.Y, l.Border.W, l.Border.H, 2)
	c.SetRGB(1, 1, 1)
	c.Fill()

	drawHeader(c, spec, l.Header, cfg)

	panel := ImagePanel{Color: spec.Color, Artwork: assets.Artwork(spec)}
	panel.Draw(c, l.Panel.X, l.Panel.Y, PanelGeometry{
		W:               l.Panel.W,
		H:               l.Panel.H,
		CornerRadius:    cfg.CornerRadius,
		LineWidth:       cfg.LineWidth,
		ShieldPadding:   cfg.Padding,
		WatermarkStroke: cfg.WatermarkStroke,
	})

	for i, s := range spec.Stats {
		box := StatBox{Label: s.Label, Value: s.Value}
		box.Draw(c, l.StatColumn.X, float64(i)*l.StatBox.H, l.StatBox, cfg.LineWidth, assets)
	}
	DrawSlotIndicator(c, spec.Slot, l.Slot.X, l.Slot.Y, l.Slot.W, cfg.LineWidth)

	drawDescription(c, spec, l.Description, cfg, assets)
	drawDetail(c, spec, l.Detail, cfg)

	return c.Image(), nil
}

func strokeBox(c *Canvas, r Rect, cfg LayoutConfig) {
	RoundedRectPath(c.Context, r.X, r.Y, r.W, r.H, cfg.CornerRadius)
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(cfg.LineWidth)
	c.Stroke()
}

func drawHeader(c *Canvas, spec *cards.CardSpec, r Rect, cfg LayoutConfig) {
	strokeBox(c, r, cfg)

	title := NewTextRegion(r.X, r.Y, r.W, r.H)
	title.Bold = true
	title.HCenter = true
	title.VCenter = true
	title.FontSize = cfg.TitleFontSize
	title.DrawText(c, spec.Name)
}

func drawDescription(c *Canvas, spec *cards.CardSpec, r Rect, cfg LayoutConfig, assets Assets) {
	strokeBox(c, r, cfg)

	pad := cfg.Padding
	desc := NewTextRegion(r.X+pad*2, r.Y+pad, r.W-pad*2, r.H-pad*2)
	desc.VCenter = true
	desc.FontSize = cfg.DescFontSize

	for _, t := range spec.Types {
		desc.Place(c, ImageItem{Image: assets.TypeIcon(t), W: cfg.DescIconSize, H: cfg.DescIconSize})
		desc.DrawText(c, " ")
	}
	desc.DrawText(c, DescriptorPhrase(spec.Types, spec.Color, spec.Slot))
}

func drawDetail(c *Canvas, spec *cards.CardSpec, r Rect, cfg LayoutConfig) {
	strokeBox(c, r, cfg)

	pad := cfg.DetailPadding
	detail := NewTextRegion(r.X+pad, r.Y+pad*2, r.W-pad*2, r.H-pad*3)
	detail.FontSize = cfg.DetailFontSize

	if spec.Text != "" {
		detail.DrawKeywordText(c, spec.Text)
		detail.NewLine(c)
	}
	if spec.Flavor != "" {
		detail.Italic = true
		detail.FontSize = cfg.FlavorFontSize
		detail.DrawText(c, spec.Flavor)
	}
}

// DescriptorPhrase names the item for the description bar, e.g.
// "Wild and Jeweled Red Chestpiece".
func DescriptorPhrase(types []cards.SpecialType, color cards.Color, slot cards.Slot) string {
	tags := make([]string, len(types))
	for i, t := range types {
		tags[i] = t.Label()
	}
	return JoinDescriptors(tags, color.String()+" "+slot.Label())
}

// JoinDescriptors puts the tags before noun with an Oxford comma:
// "A noun", "A and B noun", "A, B, and C noun".
func JoinDescriptors(tags []string, noun string) string {
	switch len(tags) {
	case 0:
		return noun
	case 1:
		return tags[0] + " " + noun
	case 2:
		return tags[0] + " and " + tags[1] + " " + noun
	}
	last := len(tags) - 1
	return strings.Join(tags[:last], ", ") + ", and " + tags[last] + " " + noun
}
