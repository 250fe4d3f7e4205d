package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	all := []CardSpec{
		{Name: "Test Brown Card", Color: Brown, Slot: Trinket, Types: []SpecialType{Beast}},
		{Name: "Test Red Card", Color: Red, Slot: Chest, Text: "Ranged: Damage is dealt later."},
		{Name: "Test Purple Card", Color: Purple, Slot: Back, Types: []SpecialType{Instrument, Jeweled}},
	}

	names := func(cs []CardSpec) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Len(t, Filter(all, FilterOptions{}), 3)
	assert.Equal(t, []string{"Test Red Card"}, names(Filter(all, FilterOptions{Colors: []string{"red"}})))
	assert.Equal(t, []string{"Test Purple Card"}, names(Filter(all, FilterOptions{Slots: []string{"Back Item"}})))
	assert.Equal(t, []string{"Test Brown Card"}, names(Filter(all, FilterOptions{Types: []string{"Wild"}})))
	assert.Equal(t, []string{"Test Red Card"}, names(Filter(all, FilterOptions{FreeWords: "ranged"})))
	assert.Equal(t, []string{"Test Purple Card"}, names(Filter(all, FilterOptions{Names: []string{"test purple card"}})))
}
