package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdhowe/Ballquest/internal/cards"
)

func TestExportDeckText(t *testing.T) {
	d := Deck{Name: "Starter", Cards: map[string]int{"Test Red Card": 2, "Test Blue Card": 1}}
	assert.Equal(t, "# Starter\n1xTest Blue Card\n2xTest Red Card", ExportDeckText(d))

	assert.Equal(t, "1xA", ExportDeckText(Deck{Cards: map[string]int{"A": 1}}))
}

func TestResolve(t *testing.T) {
	all := []cards.CardSpec{
		{Name: "Test Red Card", Color: cards.Red},
		{Name: "Test Blue Card", Color: cards.Blue},
	}

	t.Run("repeats cards by count", func(t *testing.T) {
		d := Deck{Name: "Starter", Cards: map[string]int{"Test Red Card": 2, "Test Blue Card": 1}}
		got, err := d.Resolve(all)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Test Blue Card", got[0].Name)
		assert.Equal(t, "Test Red Card", got[1].Name)
		assert.Equal(t, "Test Red Card", got[2].Name)
	})

	t.Run("unknown card", func(t *testing.T) {
		d := Deck{Name: "Starter", Cards: map[string]int{"Nope": 1}}
		_, err := d.Resolve(all)
		assert.ErrorContains(t, err, "Nope")
	})

	t.Run("too many copies of one card", func(t *testing.T) {
		d := Deck{Name: "Hoard", Cards: map[string]int{"Test Red Card": 1000000}}
		_, err := d.Resolve(all)
		assert.ErrorIs(t, err, ErrDeckTooLarge)
	})

	t.Run("too many cards in all", func(t *testing.T) {
		counts := map[string]int{}
		for i := 0; i < MaxCards/MaxCopies+1; i++ {
			counts[fmt.Sprintf("Card %d", i)] = MaxCopies
		}
		_, err := Deck{Name: "Hoard", Cards: counts}.Resolve(all)
		assert.ErrorIs(t, err, ErrDeckTooLarge)
	})

	t.Run("limits are inclusive", func(t *testing.T) {
		d := Deck{Cards: map[string]int{"Test Red Card": MaxCopies}}
		got, err := d.Resolve(all)
		require.NoError(t, err)
		assert.Len(t, got, MaxCopies)
	})
}
