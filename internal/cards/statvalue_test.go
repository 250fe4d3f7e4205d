package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatValue(t *testing.T) {
	tests := []struct {
		in   string
		want StatValue
	}{
		{"Red Match 3", StatValue{Kind: StatMatch, Text: "Red Match 3", Count: 3, Color: Red}},
		{"purple match 4", StatValue{Kind: StatMatch, Text: "purple match 4", Count: 4, Color: Purple}},
		{"2/Beast", StatValue{Kind: StatMultiAppeal, Text: "2/Beast", Count: 2, Type: Beast}},
		{"3 / Wild", StatValue{Kind: StatMultiAppeal, Text: "3 / Wild", Count: 3, Type: Beast}},
		{"6b", StatValue{Kind: StatPlain, Text: "6b"}},
		{"-4", StatValue{Kind: StatPlain, Text: "-4"}},
		// malformed shapes fall back to plain text
		{"Green Match 3", StatValue{Kind: StatPlain, Text: "Green Match 3"}},
		{"Red Match", StatValue{Kind: StatPlain, Text: "Red Match"}},
		{"x/Beast", StatValue{Kind: StatPlain, Text: "x/Beast"}},
		{"2/Dragon", StatValue{Kind: StatPlain, Text: "2/Dragon"}},
		// match wins over slash
		{"Blue Match 2/Beast", StatValue{Kind: StatPlain, Text: "Blue Match 2/Beast"}},
		{"Blue Match 2 /", StatValue{Kind: StatMatch, Text: "Blue Match 2 /", Count: 2, Color: Blue}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatValue(tt.in))
		})
	}
}
