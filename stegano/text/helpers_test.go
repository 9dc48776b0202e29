package text

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	letters = lower + upper + digits
)

// mixedWords lists all 17576 three-letter words "Aaa".."Zzz" followed by
// the first 47960 four-letter ones.
func mixedWords() []string {
	words := make([]string, 0, DictionarySize)
	for _, a := range upper {
		for _, b := range lower {
			for _, c := range lower {
				words = append(words, string([]rune{a, b, c}))
			}
		}
	}
	for _, a := range upper {
		for _, b := range lower {
			for _, c := range lower {
				for _, d := range lower {
					if len(words) == DictionarySize {
						return words
					}
					words = append(words, string([]rune{a, b, c, d}))
				}
			}
		}
	}
	return words
}

// narrowWords lists 65536 words that are all three letters long.
func narrowWords() []string {
	words := make([]string, 0, DictionarySize)
	for _, a := range upper {
		for _, b := range letters {
			for _, c := range letters {
				if len(words) == DictionarySize {
					return words
				}
				words = append(words, string([]rune{a, b, c}))
			}
		}
	}
	return words
}

var (
	mixedOnce  = sync.OnceValues(func() (*Dictionary, error) { return NewDictionary(mixedWords()) })
	narrowOnce = sync.OnceValues(func() (*Dictionary, error) { return NewDictionary(narrowWords()) })
)

func mixedDict(t testing.TB) *Dictionary {
	t.Helper()
	d, err := mixedOnce()
	require.NoError(t, err)
	return d
}

func narrowDict(t testing.TB) *Dictionary {
	t.Helper()
	d, err := narrowOnce()
	require.NoError(t, err)
	return d
}

func fixedSeed(seed int64) EncoderOption {
	return WithSeed(func() int64 { return seed })
}
