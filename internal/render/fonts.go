package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects one face of a Fonts family.
type FontStyle struct {
	Bold   bool
	Italic bool
	Size   float64
}

// Fonts is a parsed four-variant family. A Fonts value is read-only once
// built and may be shared by concurrent renders; faces are not, so each
// Canvas makes its own.
type Fonts struct {
	regular    *truetype.Font
	bold       *truetype.Font
	italic     *truetype.Font
	boldItalic *truetype.Font
}

// DefaultFonts returns the bundled Go font family.
func DefaultFonts() *Fonts {
	return &Fonts{
		regular:    mustParse(goregular.TTF),
		bold:       mustParse(gobold.TTF),
		italic:     mustParse(goitalic.TTF),
		boldItalic: mustParse(gobolditalic.TTF),
	}
}

func mustParse(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// LoadFonts reads regular.ttf, bold.ttf, italic.ttf and bolditalic.ttf
// from dir. Variants that are absent fall back to the bundled family.
func LoadFonts(dir string) (*Fonts, error) {
	fonts := DefaultFonts()
	for name, dst := range map[string]**truetype.Font{
		"regular.ttf":    &fonts.regular,
		"bold.ttf":       &fonts.bold,
		"italic.ttf":     &fonts.italic,
		"bolditalic.ttf": &fonts.boldItalic,
	} {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		f, err := truetype.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		*dst = f
	}
	return fonts, nil
}

func (f *Fonts) variant(bold, italic bool) *truetype.Font {
	switch {
	case bold && italic:
		return f.boldItalic
	case bold:
		return f.bold
	case italic:
		return f.italic
	}
	return f.regular
}

// NewFace builds a face for the style at 72 DPI, so sizes are pixels.
func (f *Fonts) NewFace(s FontStyle) font.Face {
	return truetype.NewFace(f.variant(s.Bold, s.Italic), &truetype.Options{
		Size:    s.Size,
		Hinting: font.HintingFull,
	})
}
