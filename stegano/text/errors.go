package text

import (
	"errors"
	"fmt"
)

var (
	ErrDictionaryIntegrity = errors.New("dictionary integrity check failed")
	ErrRange               = errors.New("word position out of dictionary range")
	ErrLookupMiss          = errors.New("word not found in dictionary")
)

// DictionaryError is returned when a word list cannot serve as a
// bijection between 16-bit values and words.
type DictionaryError struct {
	Total  int    // number of words seen
	Word   string // offending word, if any
	Reason string
}

func (e *DictionaryError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("dictionary: %s: %q", e.Reason, e.Word)
	}
	return fmt.Sprintf("dictionary: %s (%d words, %d required)", e.Reason, e.Total, DictionarySize)
}

func (e *DictionaryError) Unwrap() error {
	return ErrDictionaryIntegrity
}

// RangeError reports a word length or an index outside the dictionary.
type RangeError struct {
	Length int
	Index  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dictionary: no word of length %d at index %d", e.Length, e.Index)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// LookupError reports a cover text token that is not a dictionary word.
type LookupError struct {
	Token  string
	Offset int // byte offset of the token in the cover text
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown word %q at offset %d", e.Token, e.Offset)
}

func (e *LookupError) Unwrap() error {
	return ErrLookupMiss
}
