package render

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is one card's drawing surface: a gg context plus the font faces
// it has used so far.
type Canvas struct {
	*gg.Context
	fonts *Fonts
	faces map[FontStyle]font.Face
	style FontStyle
}

func NewCanvas(width, height int, fonts *Fonts) *Canvas {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	return &Canvas{
		Context: gg.NewContext(width, height),
		fonts:   fonts,
		faces:   map[FontStyle]font.Face{},
	}
}

// SetFont selects the face for s and resets the source color to black.
func (c *Canvas) SetFont(s FontStyle) {
	c.useFont(s)
	c.SetRGB(0, 0, 0)
}

// Font reports the active style.
func (c *Canvas) Font() FontStyle { return c.style }

func (c *Canvas) useFont(s FontStyle) {
	face, ok := c.faces[s]
	if !ok {
		face = c.fonts.NewFace(s)
		c.faces[s] = face
	}
	c.SetFontFace(face)
	c.style = s
}

// Close releases the faces the canvas created.
func (c *Canvas) Close() error {
	for s, f := range c.faces {
		f.Close()
		delete(c.faces, s)
	}
	return nil
}
