package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/tdhowe/Ballquest/internal/cards"
)

// RoundedRectPath adds a closed rectangle with quarter-circle corners of
// radius r to the current path. r <= 0 gives square corners. The caller
// chooses to stroke or fill.
func RoundedRectPath(dc *gg.Context, x, y, w, h, r float64) {
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	r = math.Min(r, math.Min(w, h)/2)

	dc.NewSubPath()
	dc.MoveTo(x+r, y)
	dc.DrawArc(x+w-r, y+r, r, gg.Radians(-90), 0)
	dc.DrawArc(x+w-r, y+h-r, r, 0, gg.Radians(90))
	dc.DrawArc(x+r, y+h-r, r, gg.Radians(90), gg.Radians(180))
	dc.DrawArc(x+r, y+r, r, gg.Radians(180), gg.Radians(270))
	dc.ClosePath()
}

// pathSeg is one step of an outline: a line to P[0], or a cubic Bezier
// with controls P[0], P[1] ending at P[2].
type pathSeg struct {
	line bool
	p    []gg.Point
}

func line(x, y float64) pathSeg { return pathSeg{line: true, p: []gg.Point{{X: x, Y: y}}} }

func curve(x1, y1, x2, y2, x3, y3 float64) pathSeg {
	return pathSeg{p: []gg.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}}
}

// The lower flanks are shared by every shield: out from the tip at the
// origin to the right shoulder, and back from the left shoulder.
func rightFlank(top float64) pathSeg { return curve(.55, .1, .9, .4, 1, top) }

func leftFlank() pathSeg { return curve(-.9, .4, -.55, .1, 0, 0) }

// shieldOutlines holds the outline for each card color in a space where
// the shield spans x in [-1, 1] and y in [0, ~1], y up, tip at the origin.
var shieldOutlines = map[cards.Color][]pathSeg{
	cards.Brown: {
		rightFlank(.83),
		curve(.4, 1.04, -.4, 1.04, -1, .83),
		leftFlank(),
	},
	cards.Red: {
		rightFlank(.97),
		line(0, .85),
		line(-1, .97),
		leftFlank(),
	},
	cards.Blue: {
		rightFlank(.75),
		line(.4, 1),
		line(-.4, 1),
		line(-1, .75),
		leftFlank(),
	},
	cards.Purple: {
		rightFlank(.85),
		curve(.72, .8, .33, .85, 0, 1),
		curve(-.353, .85, -.72, .8, -1, .85),
		leftFlank(),
	},
}

// ShieldPath adds the color's shield outline, in normalized coordinates,
// to the current path. The outline starts and ends at the origin.
func ShieldPath(dc *gg.Context, color cards.Color) {
	segs, ok := shieldOutlines[color]
	if !ok {
		segs = shieldOutlines[cards.Brown]
	}
	dc.NewSubPath()
	dc.MoveTo(0, 0)
	for _, s := range segs {
		if s.line {
			dc.LineTo(s.p[0].X, s.p[0].Y)
			continue
		}
		dc.CubicTo(s.p[0].X, s.p[0].Y, s.p[1].X, s.p[1].Y, s.p[2].X, s.p[2].Y)
	}
	dc.ClosePath()
}

// shieldPathInBox maps the normalized shield onto the box with top-left
// (x, y): tip at the bottom centre, full width, y flipped.
func shieldPathInBox(dc *gg.Context, color cards.Color, x, y, w, h float64) {
	dc.Push()
	dc.Translate(x+w/2, y+h)
	dc.Scale(w/2, -h)
	ShieldPath(dc, color)
	dc.Pop()
}
