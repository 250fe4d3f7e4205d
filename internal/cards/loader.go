package cards

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LoadCardsFromDataDir loads CSV files from a data directory (best-effort).
// It expects at least BallQuest.csv; custom_cards.csv is optional.
// Rows that cannot become a card are reported in the returned error
// alongside the cards that loaded.
func LoadCardsFromDataDir(dataDir string) ([]CardSpec, error) {
	files := []string{
		filepath.Join(dataDir, "BallQuest.csv"),
		filepath.Join(dataDir, "custom_cards.csv"),
	}

	var all []CardSpec
	var rowErrs []error
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			// skip missing files
			continue
		}
		found = true
		cs, err := LoadCSV(f)
		var rowErr *RowError
		if err != nil && !errors.As(err, &rowErr) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("loading %s: %w", f, err))
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("no input CSVs found in %s", dataDir)
	}
	return all, errors.Join(rowErrs...)
}

func LoadCSV(path string) ([]CardSpec, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadCards(fp)
}

// RowError collects the rows of one CSV that did not produce a card.
type RowError struct {
	Errs []error
}

func (e *RowError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *RowError) Unwrap() []error { return e.Errs }

// ReadCards maps one CSV row per card onto a CardSpec.
func ReadCards(rd io.Reader) ([]CardSpec, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.New("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []CardSpec{}
	var bad []error
	for i, row := range rows[1:] {
		c, err := cardFromRow(row, get)
		if err != nil {
			// header is line 1
			bad = append(bad, fmt.Errorf("line %d: %w", i+2, err))
			continue
		}
		out = append(out, *c)
	}
	if len(bad) > 0 {
		return out, &RowError{Errs: bad}
	}
	return out, nil
}

func cardFromRow(row []string, get func([]string, string) string) (*CardSpec, error) {
	name := get(row, "Name")
	color, err := ParseColor(get(row, "Color"))
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	slot, err := ParseSlot(get(row, "Slot"))
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	c := NewCard(name, color, slot)

	if typ := get(row, "Type"); typ != "" {
		t, err := ParseSpecialType(typ)
		if err != nil {
			log.Printf("Warning: item %q: ignoring %v", name, err)
		} else {
			c.AddType(t)
		}
	}

	addStat := func(label string, optional bool) error {
		v := get(row, label)
		if optional && v == "" {
			return nil
		}
		if v == "" {
			v = "0"
		}
		return c.AddStat(label, v)
	}

	for _, label := range []string{"Price", "Appeal", "Priority"} {
		if err := addStat(label, false); err != nil {
			return nil, err
		}
	}

	// damage type is appended to the value as its first letter
	if dmg := get(row, "Damage"); dmg != "" {
		if dt := get(row, "Damage Type"); dt != "" {
			r, _ := utf8.DecodeRuneInString(dt)
			dmg += string(unicode.ToLower(r))
		}
		if err := c.AddStat("Damage", dmg); err != nil {
			return nil, err
		}
	}

	for _, label := range []string{"HP", "Capacity"} {
		if err := addStat(label, true); err != nil {
			return nil, err
		}
	}

	text := strings.TrimSpace(get(row, "Passive") + " " + get(row, "Ability"))
	c.SetText(ExpandKeywords(text))
	c.SetFlavorText(get(row, "Description"))
	return c, nil
}
