package cards

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStat(t *testing.T) {
	t.Run("five stats fit", func(t *testing.T) {
		c := NewCard("Test Brown Card", Brown, Trinket)
		for i := 0; i < MaxStats; i++ {
			require.NoError(t, c.AddStat("Price", "2"))
		}
		assert.Len(t, c.Stats, 5)
		assert.NoError(t, c.Validate())
	})

	t.Run("sixth stat is rejected with the card name", func(t *testing.T) {
		c := NewCard("Test Brown Card", Brown, Trinket)
		for i := 0; i < MaxStats; i++ {
			require.NoError(t, c.AddStat("Price", "2"))
		}
		err := c.AddStat("Capacity", "1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooManyStats))
		assert.Contains(t, err.Error(), "Test Brown Card")
		assert.Len(t, c.Stats, 5)
	})

	t.Run("validate catches literals", func(t *testing.T) {
		c := CardSpec{Name: "Literal", Stats: make([]Stat, 6)}
		assert.ErrorIs(t, c.Validate(), ErrTooManyStats)
	})
}

func TestParseEnums(t *testing.T) {
	c, err := ParseColor("purple")
	require.NoError(t, err)
	assert.Equal(t, Purple, c)

	_, err = ParseColor("Green")
	assert.ErrorIs(t, err, ErrUnknownValue)

	s, err := ParseSlot("Back Item")
	require.NoError(t, err)
	assert.Equal(t, Back, s)
	s, err = ParseSlot("feet")
	require.NoError(t, err)
	assert.Equal(t, Feet, s)

	typ, err := ParseSpecialType("Wild")
	require.NoError(t, err)
	assert.Equal(t, Beast, typ)
	typ, err = ParseSpecialType("Instrument")
	require.NoError(t, err)
	assert.Equal(t, Instrument, typ)
	assert.Equal(t, "Musical", typ.Label())
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("Red")))
	assert.Equal(t, Red, c)
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Red", string(b))

	r, g, bl := Blue.RGB()
	assert.Equal(t, []float64{0.5, 0.7, 0.9}, []float64{r, g, bl})
}

func TestArtworkPath(t *testing.T) {
	c := NewCard("Test Red Card", Red, Chest)
	assert.Equal(t, "Test Red Card.png", c.ArtworkPath())
	c.Artwork = "custom/red.png"
	assert.Equal(t, "custom/red.png", c.ArtworkPath())
}
