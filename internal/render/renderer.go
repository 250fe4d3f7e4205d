package render

import (
	"image"

	"github.com/tdhowe/Ballquest/internal/cards"
)

// Renderer binds the fonts, assets and layout shared by a batch of cards.
// Its fields are only read, so one Renderer may render cards concurrently.
type Renderer struct {
	Fonts  *Fonts
	Assets Assets
	Layout LayoutConfig
}

func NewRenderer(fonts *Fonts, assets Assets) *Renderer {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	return &Renderer{Fonts: fonts, Assets: assets, Layout: DefaultLayout()}
}

func (r *Renderer) Render(spec *cards.CardSpec) (image.Image, error) {
	return Compose(spec, r.Fonts, r.Assets, r.Layout)
}
