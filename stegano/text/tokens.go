package text

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Token is one word of a cover text.
type Token struct {
	Word   string
	Offset int // byte offset in the scanned text
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Tokens yields the maximal runs of word characters in s, dropping the
// punctuation and whitespace around them. The sequence is lazy and can
// be ranged over any number of times.
func Tokens(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := -1
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				if !yield(Token{s[start:i], start}) {
					return
				}
				start = -1
			}
			i += size
		}
		if start >= 0 {
			yield(Token{s[start:], start})
		}
	}
}
