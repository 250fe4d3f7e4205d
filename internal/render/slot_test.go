package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdhowe/Ballquest/internal/cards"
)

func TestSlotGrid(t *testing.T) {
	// rows top to bottom, '#' marks an occupied cell
	want := map[cards.Slot]string{
		cards.Head:    ".#. ... ...",
		cards.Chest:   "... .#. ...",
		cards.Feet:    "... ... .#.",
		cards.Weapon:  "... #.# ...",
		cards.Back:    "#.. ... ...",
		cards.Trinket: "..# ... #.#",
	}
	for _, s := range cards.Slots {
		t.Run(s.String(), func(t *testing.T) {
			grid := SlotGrid(s)
			var rows []string
			for _, row := range grid {
				var b strings.Builder
				for _, filled := range row {
					if filled {
						b.WriteByte('#')
					} else {
						b.WriteByte('.')
					}
				}
				rows = append(rows, b.String())
			}
			assert.Equal(t, want[s], strings.Join(rows, " "))
		})
	}
}

func TestDrawSlotIndicator(t *testing.T) {
	const (
		x, y      = 10.0, 10.0
		size      = 90.0
		lineWidth = 3.0
		cell      = size / 3
	)
	c := NewCanvas(110, 110, testFonts)
	defer c.Close()
	c.SetRGB(1, 1, 1)
	c.Clear()
	DrawSlotIndicator(c, cards.Weapon, x, y, size, lineWidth)
	img := c.Image()

	gray := func(px, py float64) uint32 {
		r, _, _, _ := img.At(int(px), int(py)).RGBA()
		return r >> 8
	}

	// weapon fills the left and right cells of the middle row
	assert.Equal(t, uint32(0), gray(x+cell/2, y+cell*1.5), "row 1 col 0 filled")
	assert.Equal(t, uint32(0), gray(x+cell*2.5, y+cell*1.5), "row 1 col 2 filled")
	assert.Equal(t, uint32(255), gray(x+cell/2, y+cell/2), "row 0 col 0 empty")
	assert.Equal(t, uint32(255), gray(x+cell*1.5, y+cell*1.5), "row 1 col 1 empty")

	// the fill is inset one line width from the cell border, leaving a gap
	// between the border stroke and the filled square
	assert.Greater(t, gray(x+lineWidth-1, y+cell*1.5), uint32(200), "inset gap")

	// outer outline
	assert.Equal(t, uint32(0), gray(x, y+size/2))
	assert.Equal(t, uint32(0), gray(x+size/2, y+size-1))
}
