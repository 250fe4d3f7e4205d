package deck

import (
	"strconv"
	"strings"
)

func ExportDeckText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	// simple deterministic order
	for _, name := range d.Names() {
		lines = append(lines, strconv.Itoa(d.Cards[name])+"x"+name)
	}
	return strings.Join(lines, "\n")
}
