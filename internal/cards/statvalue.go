package cards

import (
	"strconv"
	"strings"
)

type StatKind int

const (
	StatPlain StatKind = iota
	StatMatch
	StatMultiAppeal
)

// StatValue is a stat's display value sorted by shape.
// Color is set for StatMatch, Type for StatMultiAppeal.
type StatValue struct {
	Kind  StatKind
	Text  string
	Count int
	Color Color
	Type  SpecialType
}

// ClassifyStatValue sniffs the value's textual shape. "match" is checked
// before "/" so a value holding both tokens is always a match. Values
// that do not parse fall back to plain text.
func ClassifyStatValue(s string) StatValue {
	plain := StatValue{Kind: StatPlain, Text: s}

	switch {
	case strings.Contains(strings.ToLower(s), "match"):
		fields := strings.Fields(s)
		if len(fields) < 2 {
			return plain
		}
		color, err := ParseColor(fields[0])
		if err != nil {
			return plain
		}
		for _, f := range fields[1:] {
			if n, err := strconv.Atoi(f); err == nil {
				return StatValue{Kind: StatMatch, Text: s, Count: n, Color: color}
			}
		}
		return plain

	case strings.Contains(s, "/"):
		count, kind, _ := strings.Cut(s, "/")
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return plain
		}
		t, err := ParseSpecialType(kind)
		if err != nil {
			return plain
		}
		return StatValue{Kind: StatMultiAppeal, Text: s, Count: n, Type: t}
	}

	return plain
}
