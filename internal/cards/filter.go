package cards

import "strings"

type FilterOptions struct {
	Colors    []string `json:"colors"`
	Slots     []string `json:"slots"`
	Types     []string `json:"types"`
	Names     []string `json:"names"`
	FreeWords string   `json:"free_words"`
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func Filter(cards []CardSpec, opt FilterOptions) []CardSpec {
	var out []CardSpec
	for _, c := range cards {
		if len(opt.Names) > 0 && !containsFold(opt.Names, c.Name) {
			continue
		}
		if len(opt.Colors) > 0 && !containsFold(opt.Colors, c.Color.String()) {
			continue
		}
		if len(opt.Slots) > 0 &&
			!containsFold(opt.Slots, c.Slot.String()) && !containsFold(opt.Slots, c.Slot.Label()) {
			continue
		}
		if len(opt.Types) > 0 {
			matched := false
			for _, t := range c.Types {
				if containsFold(opt.Types, t.String()) || containsFold(opt.Types, t.Label()) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.Name), k) &&
					!strings.Contains(strings.ToLower(c.Text), k) &&
					!strings.Contains(strings.ToLower(c.Flavor), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
