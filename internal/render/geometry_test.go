package render

import (
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/tdhowe/Ballquest/internal/cards"
)

func TestShieldOutlines(t *testing.T) {
	for _, color := range cards.Colors {
		t.Run(color.String(), func(t *testing.T) {
			segs, ok := shieldOutlines[color]
			assert.True(t, ok)
			assert.NotEmpty(t, segs)

			last := segs[len(segs)-1]
			end := last.p[len(last.p)-1]
			assert.Equal(t, gg.Point{X: 0, Y: 0}, end, "outline must close at the origin")

			for _, s := range segs {
				for _, p := range s.p {
					assert.True(t, p.X >= -1 && p.X <= 1, "x out of range: %v", p)
					assert.True(t, p.Y >= 0 && p.Y <= 1.1, "y out of range: %v", p)
				}
			}
		})
	}

	// every color has its own top profile
	seen := map[int]cards.Color{}
	for _, color := range cards.Colors {
		n := len(shieldOutlines[color])
		top := shieldOutlines[color][0].p[2].Y
		key := n*1000 + int(top*100)
		_, dup := seen[key]
		assert.False(t, dup, "%s outline duplicates %s", color, seen[key])
		seen[key] = color
	}
}

func TestShieldPathFillsBox(t *testing.T) {
	c := NewCanvas(100, 100, testFonts)
	shieldPathInBox(c.Context, cards.Brown, 10, 10, 80, 80)
	c.SetRGB(0, 0, 0)
	c.Fill()

	img := c.Image()
	// the body of the shield sits in the upper middle of the box
	_, _, _, a := img.At(50, 40).RGBA()
	assert.NotZero(t, a)
	// the tip narrows to a point, leaving the bottom corners empty
	_, _, _, a = img.At(12, 88).RGBA()
	assert.Zero(t, a)
}

func TestRoundedRectPath(t *testing.T) {
	t.Run("rounded corners stay empty", func(t *testing.T) {
		c := NewCanvas(100, 100, testFonts)
		RoundedRectPath(c.Context, 10, 10, 80, 60, 15)
		c.SetRGB(0, 0, 0)
		c.Fill()

		img := c.Image()
		_, _, _, a := img.At(11, 11).RGBA()
		assert.Zero(t, a)
		_, _, _, a = img.At(50, 40).RGBA()
		assert.NotZero(t, a)
	})

	t.Run("zero radius is a plain rectangle", func(t *testing.T) {
		c := NewCanvas(100, 100, testFonts)
		RoundedRectPath(c.Context, 10, 10, 80, 60, 0)
		c.SetRGB(0, 0, 0)
		c.Fill()

		_, _, _, a := c.Image().At(11, 11).RGBA()
		assert.NotZero(t, a)
	})
}
