package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(s string) []Token {
	var out []Token
	for tok := range Tokens(s) {
		out = append(out, tok)
	}
	return out
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"  ...!  ", nil},
		{"Aab.", []Token{{"Aab", 0}}},
		{"Aab atv, bnp chj!\n\nDbd? x_1", []Token{
			{"Aab", 0}, {"atv", 4}, {"bnp", 9}, {"chj", 13}, {"Dbd", 19}, {"x_1", 24},
		}},
		{"\u00ab\u00dcber\u00bb stra\u00dfe", []Token{{"\u00dcber", 2}, {"stra\u00dfe", 10}}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, collect(tc.in), "input %q", tc.in)
	}
}

func TestTokensRestartable(t *testing.T) {
	seq := Tokens("one two three")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for tok := range seq {
		second++
		if tok.Word == "two" {
			break
		}
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 2, second)
}
