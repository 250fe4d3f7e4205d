package imagepkg

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SheetOptions lays out a print sheet of rendered cards.
type SheetOptions struct {
	Columns    int
	CardWidth  int
	CardHeight int
	Gap        int
}

func DefaultSheetOptions() SheetOptions {
	return SheetOptions{Columns: 3, CardWidth: 375, CardHeight: 525, Gap: 16}
}

// ComposeSheet pastes the cards row by row onto one image. A QR code, if
// given, takes the next free cell after the last card.
func ComposeSheet(cards []image.Image, qr image.Image, opt SheetOptions) image.Image {
	if opt.Columns < 1 {
		opt.Columns = 1
	}
	cells := len(cards)
	if qr != nil {
		cells++
	}
	if cells == 0 {
		cells = 1
	}
	rows := (cells + opt.Columns - 1) / opt.Columns

	w := opt.Gap + opt.Columns*(opt.CardWidth+opt.Gap)
	h := opt.Gap + rows*(opt.CardHeight+opt.Gap)
	canvas := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	cell := func(i int) image.Point {
		return image.Pt(
			opt.Gap+(i%opt.Columns)*(opt.CardWidth+opt.Gap),
			opt.Gap+(i/opt.Columns)*(opt.CardHeight+opt.Gap),
		)
	}

	for i, c := range cards {
		resized := imaging.Resize(c, opt.CardWidth, opt.CardHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, resized, cell(i))
	}

	if qr != nil {
		q := imaging.Fit(qr, opt.CardWidth, opt.CardHeight, imaging.NearestNeighbor)
		pt := cell(len(cards))
		pt.X += (opt.CardWidth - q.Bounds().Dx()) / 2
		pt.Y += (opt.CardHeight - q.Bounds().Dy()) / 2
		canvas = imaging.Paste(canvas, q, pt)
	}

	return canvas
}

// EncodePNG encodes img fully into memory.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
