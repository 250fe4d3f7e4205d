package render

import "github.com/tdhowe/Ballquest/internal/cards"

type slotGrid [3][3]bool

var slotGrids = map[cards.Slot]slotGrid{
	cards.Head:    {{false, true, false}, {false, false, false}, {false, false, false}},
	cards.Chest:   {{false, false, false}, {false, true, false}, {false, false, false}},
	cards.Feet:    {{false, false, false}, {false, false, false}, {false, true, false}},
	cards.Weapon:  {{false, false, false}, {true, false, true}, {false, false, false}},
	cards.Back:    {{true, false, false}, {false, false, false}, {false, false, false}},
	cards.Trinket: {{false, false, true}, {false, false, false}, {true, false, true}},
}

// SlotGrid returns the occupancy grid for a slot, indexed [row][col].
func SlotGrid(s cards.Slot) [3][3]bool { return slotGrids[s] }

// DrawSlotIndicator draws the slot's 3×3 grid in a size×size square at
// (x, y). Occupied cells are filled black, inset by one line width so the
// fill stays clear of the cell border.
func DrawSlotIndicator(c *Canvas, slot cards.Slot, x, y, size, lineWidth float64) {
	grid := slotGrids[slot]
	cell := size / 3

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(lineWidth)
	for row := range grid {
		for col, filled := range grid[row] {
			cx := x + float64(col)*cell
			cy := y + float64(row)*cell
			c.DrawRectangle(cx, cy, cell, cell)
			c.Stroke()

			if filled {
				c.DrawRectangle(cx+lineWidth, cy+lineWidth, cell-lineWidth*2, cell-lineWidth*2)
				c.Fill()
			}
		}
	}

	c.DrawRectangle(x, y, size, size)
	c.Stroke()
}
