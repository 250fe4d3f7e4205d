package cards

import (
	"errors"
	"fmt"
	"strings"
)

// MaxStats is the number of stat cells a card has room for.
const MaxStats = 5

var (
	ErrTooManyStats = errors.New("too many stats")
	ErrUnknownValue = errors.New("unknown value")
)

type Color int

const (
	Brown Color = iota
	Blue
	Red
	Purple
)

type colorInfo struct {
	name string
	rgb  [3]float64
}

var colors = map[Color]colorInfo{
	Brown:  {"Brown", [3]float64{0.64, 0.5, 0.34}},
	Blue:   {"Blue", [3]float64{0.5, 0.7, 0.9}},
	Red:    {"Red", [3]float64{1, 0.61, 0.61}},
	Purple: {"Purple", [3]float64{0.84, 0.72, 1.0}},
}

// Colors lists every card color in declaration order.
var Colors = []Color{Brown, Blue, Red, Purple}

func (c Color) String() string {
	if info, ok := colors[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// RGB returns the panel fill for the color as 0..1 components.
func (c Color) RGB() (r, g, b float64) {
	info := colors[c]
	return info.rgb[0], info.rgb[1], info.rgb[2]
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	for _, c := range Colors {
		if strings.EqualFold(s, colors[c].name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("color %q: %w", s, ErrUnknownValue)
}

type Slot int

const (
	Head Slot = iota
	Chest
	Feet
	Weapon
	Back
	Trinket
)

type nameLabel struct {
	name  string
	label string
}

var slots = map[Slot]nameLabel{
	Head:    {"Head", "Headpiece"},
	Chest:   {"Chest", "Chestpiece"},
	Feet:    {"Feet", "Footwear"},
	Weapon:  {"Weapon", "Weapon"},
	Back:    {"Back", "Back Item"},
	Trinket: {"Trinket", "Trinket"},
}

var Slots = []Slot{Head, Chest, Feet, Weapon, Back, Trinket}

func (s Slot) String() string {
	if info, ok := slots[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Label is the noun used in the card's description bar.
func (s Slot) Label() string { return slots[s].label }

func (s Slot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Slot) UnmarshalText(b []byte) error {
	v, err := ParseSlot(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSlot accepts either the slot name ("Head") or its label ("Headpiece").
func ParseSlot(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	for _, sl := range Slots {
		info := slots[sl]
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.label) {
			return sl, nil
		}
	}
	return 0, fmt.Errorf("slot %q: %w", s, ErrUnknownValue)
}

type SpecialType int

const (
	Instrument SpecialType = iota
	Beast
	Jeweled
)

var specialTypes = map[SpecialType]nameLabel{
	Instrument: {"Instrument", "Musical"},
	Beast:      {"Beast", "Wild"},
	Jeweled:    {"Jeweled", "Jeweled"},
}

var SpecialTypes = []SpecialType{Instrument, Beast, Jeweled}

func (t SpecialType) String() string {
	if info, ok := specialTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("SpecialType(%d)", int(t))
}

// Label is the adjective used in description text.
func (t SpecialType) Label() string { return specialTypes[t].label }

func (t SpecialType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *SpecialType) UnmarshalText(b []byte) error {
	v, err := ParseSpecialType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func ParseSpecialType(s string) (SpecialType, error) {
	s = strings.TrimSpace(s)
	for _, t := range SpecialTypes {
		info := specialTypes[t]
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.label) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("special type %q: %w", s, ErrUnknownValue)
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardSpec is the full description of one card before rendering.
type CardSpec struct {
	Name       string        `json:"name"`
	Color      Color         `json:"color"`
	Slot       Slot          `json:"slot"`
	Types      []SpecialType `json:"types,omitempty"`
	Stats      []Stat        `json:"stats,omitempty"`
	Text       string        `json:"text,omitempty"`
	Flavor     string        `json:"flavor,omitempty"`
	Artwork    string        `json:"artwork,omitempty"`
	ArtworkURL string        `json:"artwork_url,omitempty"`
}

func NewCard(name string, color Color, slot Slot) *CardSpec {
	return &CardSpec{Name: name, Color: color, Slot: slot}
}

// AddStat appends a stat cell. A card holds at most MaxStats stats.
func (c *CardSpec) AddStat(label, value string) error {
	if len(c.Stats) >= MaxStats {
		return fmt.Errorf("item %q: %w", c.Name, ErrTooManyStats)
	}
	c.Stats = append(c.Stats, Stat{Label: label, Value: value})
	return nil
}

func (c *CardSpec) AddType(t SpecialType) {
	c.Types = append(c.Types, t)
}

func (c *CardSpec) SetText(text string) {
	c.Text = text
}

// SetFlavorText sets the italic text shown below the rules text.
func (c *CardSpec) SetFlavorText(text string) {
	c.Flavor = text
}

// ArtworkPath is the image path relative to the images directory.
func (c *CardSpec) ArtworkPath() string {
	if c.Artwork != "" {
		return c.Artwork
	}
	return c.Name + ".png"
}

// Validate checks the invariants AddStat enforces, for cards built
// without it (decoded JSON, literals).
func (c *CardSpec) Validate() error {
	if len(c.Stats) > MaxStats {
		return fmt.Errorf("item %q: %w", c.Name, ErrTooManyStats)
	}
	return nil
}
