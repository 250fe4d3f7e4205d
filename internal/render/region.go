package render

import (
	"strings"

	"github.com/fogleman/gg"
)

// lineSpacing is the distance between wrapped lines, in font heights.
const lineSpacing = 5.0 / 4.0

// TextRegion is a box with a write cursor that persists across calls.
// Without centering, successive calls flow left to right and wrap at the
// right edge. With either centering flag each call is placed against the
// full box again; nothing accumulates.
type TextRegion struct {
	X, Y, W, H float64

	Bold     bool
	Italic   bool
	HCenter  bool
	VCenter  bool
	FontSize float64

	cursor gg.Point
}

func NewTextRegion(x, y, w, h float64) *TextRegion {
	return &TextRegion{
		X: x, Y: y, W: w, H: h,
		FontSize: 20,
		cursor:   gg.Point{X: x, Y: y},
	}
}

// Cursor is the position the next non-centered write starts from. Y is
// the top of the line, not its baseline.
func (r *TextRegion) Cursor() gg.Point { return r.cursor }

func (r *TextRegion) centered() bool { return r.HCenter || r.VCenter }

func (r *TextRegion) setFont(c *Canvas) {
	c.SetFont(FontStyle{Bold: r.Bold, Italic: r.Italic, Size: r.FontSize})
}

// NewLine moves the cursor to the start of the next line. It does nothing
// while a centering flag is set.
func (r *TextRegion) NewLine(c *Canvas) {
	if r.centered() {
		return
	}
	r.setFont(c)
	r.newLine(c)
}

func (r *TextRegion) newLine(c *Canvas) {
	r.cursor = gg.Point{X: r.X, Y: r.cursor.Y + c.FontHeight()*lineSpacing}
}

// DrawText writes text in the region's style and returns the baseline
// origin of every run it drew. Uncentered text is word-wrapped; centered
// text is drawn as a single run.
func (r *TextRegion) DrawText(c *Canvas, text string) []gg.Point {
	r.setFont(c)
	if r.centered() {
		return []gg.Point{r.placeCentered(c, TextItem{Text: text})}
	}

	var out []gg.Point
	for _, word := range strings.Split(text, " ") {
		out = append(out, r.flowWord(c, word))
	}
	return out
}

// Place draws any item at the cursor with the same rules DrawText uses
// for a single run, and returns its baseline origin.
func (r *TextRegion) Place(c *Canvas, item Item) gg.Point {
	r.setFont(c)
	if r.centered() {
		return r.placeCentered(c, item)
	}
	w, _ := item.Measure(c)
	return r.flow(c, item, w)
}

func (r *TextRegion) flowWord(c *Canvas, word string) gg.Point {
	w, _ := c.MeasureString(word)
	return r.flow(c, TextItem{Text: word + " "}, w)
}

// flow places item inline, wrapping first if fitW would cross the right
// edge. A line that is still empty never wraps, so an item wider than
// the region gets a line of its own instead of looping.
func (r *TextRegion) flow(c *Canvas, item Item, fitW float64) gg.Point {
	if r.cursor.X > r.X && r.cursor.X+fitW > r.X+r.W {
		r.newLine(c)
	}
	fh := c.FontHeight()
	at := gg.Point{X: r.cursor.X, Y: r.cursor.Y + fh/4}
	item.Draw(c, at.X, at.Y)

	w, _ := item.Measure(c)
	r.cursor.X = at.X + w
	return at
}

func (r *TextRegion) placeCentered(c *Canvas, item Item) gg.Point {
	x, y := r.cursor.X, r.cursor.Y
	w, _ := item.Measure(c)
	fh := c.FontHeight()

	if r.HCenter {
		x = (x+r.X+r.W)/2 - w/2
	}
	if r.VCenter {
		y = (y+r.Y+r.H)/2
	}
	at := gg.Point{X: x, Y: y + fh/4}
	item.Draw(c, at.X, at.Y)

	if r.HCenter {
		r.cursor.X = r.X
	} else {
		r.cursor.X = at.X + w
	}
	if !r.VCenter {
		r.cursor.Y = at.Y + fh - fh/4
	}
	return at
}

// sentenceEnd reports whether word closes a sentence.
func sentenceEnd(word string) bool {
	word = strings.TrimRight(word, `"')`)
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

// DrawKeywordText writes rules text where each "keyword:" run is bold and
// the body after it is not. Bold resumes at the next sentence while colons
// remain further on. Text without a colon is drawn in the region's style.
func (r *TextRegion) DrawKeywordText(c *Canvas, text string) []gg.Point {
	colons := strings.Count(text, ":")
	if colons == 0 || r.centered() {
		return r.DrawText(c, text)
	}

	bold := r.Bold
	defer func() { r.Bold = bold }()

	var out []gg.Point
	r.Bold = true
	for _, word := range strings.Split(text, " ") {
		r.setFont(c)
		out = append(out, r.flowWord(c, word))

		if n := strings.Count(word, ":"); n > 0 {
			colons -= n
			r.Bold = false
		} else if !r.Bold && colons > 0 && sentenceEnd(word) {
			r.Bold = true
		}
	}
	return out
}
