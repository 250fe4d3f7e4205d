package deck

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tdhowe/Ballquest/internal/cards"
)

// Limits on one print run. A sheet holds every card at once, so the
// total bounds the memory a single deck can ask for.
const (
	MaxCopies = 20
	MaxCards  = 120
)

var ErrDeckTooLarge = errors.New("deck too large")

// Deck is a named print run: card name -> copies.
type Deck struct {
	Name  string         `json:"name"`
	Cards map[string]int `json:"cards"`
}

// Names returns the deck's card names in sorted order.
func (d Deck) Names() []string {
	names := make([]string, 0, len(d.Cards))
	for n := range d.Cards {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve looks every deck entry up in all and repeats it by its count,
// in name order. Unknown names are an error, as is a deck over MaxCopies
// of one card or MaxCards in all.
func (d Deck) Resolve(all []cards.CardSpec) ([]cards.CardSpec, error) {
	total := 0
	for n, count := range d.Cards {
		if count > MaxCopies {
			return nil, fmt.Errorf("deck %q: %d copies of %q, limit %d: %w", d.Name, count, n, MaxCopies, ErrDeckTooLarge)
		}
		if count > 0 {
			total += count
		}
	}
	if total > MaxCards {
		return nil, fmt.Errorf("deck %q: %d cards, limit %d: %w", d.Name, total, MaxCards, ErrDeckTooLarge)
	}

	byName := make(map[string]cards.CardSpec, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	out := make([]cards.CardSpec, 0, total)
	for _, n := range d.Names() {
		c, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("deck %q: card %q not found", d.Name, n)
		}
		for i := 0; i < d.Cards[n]; i++ {
			out = append(out, c)
		}
	}
	return out, nil
}
