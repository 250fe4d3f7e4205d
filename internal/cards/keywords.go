package cards

import "regexp"

// Keywords maps a rules keyword to the definition it expands into.
var Keywords = map[string]string{
	"Wild":     "Wild: This item counts as every color when checking for matches.",
	"Block":    "Block: The next damage dealt to you this round is reduced to 0.",
	"Take Aim": "Take Aim: Skip your attack this turn. Your next attack deals double damage.",
}

// longest phrase first so "Take Aim" is never split by a shorter keyword
var keywordPattern = regexp.MustCompile(`\b(Take Aim|Block|Wild)\b`)

// ExpandKeywords replaces each keyword phrase in text with its definition.
// Expansion is a single pass; definitions are not expanded again.
func ExpandKeywords(text string) string {
	return keywordPattern.ReplaceAllStringFunc(text, func(k string) string {
		if def, ok := Keywords[k]; ok {
			return def
		}
		return k
	})
}
