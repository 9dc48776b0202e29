package text

import (
	"unicode"
	"unicode/utf8"

	"wordveil/util"
)

/*
 * A Dictionary maps every 16-bit value to exactly one word. Words are
 * grouped by their length in runes; inside a group they keep the order
 * of the source list. The global index of a word is its position in its
 * group plus the number of all shorter words.
 *
 * Words are stored in the dictionary convention: NFC, first rune in
 * upper case, rest as given. A Dictionary is immutable once built and
 * may be shared by any number of encoders and decoders.
 */
const (
	DictionarySize = 1 << 16
)

type Dictionary struct {
	minLength int
	maxLength int
	words     [][]string     // words[l-minLength] holds the group of length l
	awords    []int          // words of all lengths shorter than l
	index     map[string]int // word -> position inside its group
	total     int
}

// NewDictionary groups words by length and checks that they address
// exactly 65536 values.
func NewDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{
		index: make(map[string]int, len(words)),
	}
	byLength := map[int][]string{}
	for _, w := range words {
		w, err := canonicalWord(w)
		if err != nil {
			return nil, err
		}
		l := utf8.RuneCountInString(w)
		if d.total == 0 || l < d.minLength {
			d.minLength = l
		}
		if l > d.maxLength {
			d.maxLength = l
		}
		if _, dup := d.index[w]; dup {
			return nil, &DictionaryError{Total: d.total, Word: w, Reason: "duplicate word"}
		}
		d.index[w] = len(byLength[l])
		byLength[l] = append(byLength[l], w)
		d.total++
	}
	if d.total != DictionarySize {
		return nil, &DictionaryError{Total: d.total, Reason: "wrong number of words"}
	}

	d.words = make([][]string, d.maxLength-d.minLength+1)
	d.awords = make([]int, len(d.words))
	cumulative := 0
	for l := d.minLength; l <= d.maxLength; l++ {
		d.words[l-d.minLength] = byLength[l]
		d.awords[l-d.minLength] = cumulative
		cumulative += len(byLength[l])
	}
	return d, nil
}

func canonicalWord(w string) (string, error) {
	w = util.FixUnicode(w)
	if w == "" {
		return "", &DictionaryError{Word: w, Reason: "empty word"}
	}
	for _, r := range w {
		if !isWordRune(r) {
			return "", &DictionaryError{Word: w, Reason: "word contains a non-word character"}
		}
	}
	first, size := utf8.DecodeRuneInString(w)
	upper := unicode.ToUpper(first)
	if unicode.ToUpper(unicode.ToLower(upper)) != upper {
		// the decoder could not tell the two spellings apart
		return "", &DictionaryError{Word: w, Reason: "first letter does not survive a case change"}
	}
	return string(upper) + w[size:], nil
}

func (d *Dictionary) MinLength() int {
	return d.minLength
}

func (d *Dictionary) MaxLength() int {
	return d.maxLength
}

func (d *Dictionary) Total() int {
	return d.total
}

// Count returns the number of words of the given length.
func (d *Dictionary) Count(length int) int {
	if length < d.minLength || length > d.maxLength {
		return 0
	}
	return len(d.words[length-d.minLength])
}

// WordAt returns the word of the given length at index inside its group.
func (d *Dictionary) WordAt(length, index int) (string, error) {
	if length < d.minLength || length > d.maxLength {
		return "", &RangeError{length, index}
	}
	group := d.words[length-d.minLength]
	if index < 0 || index >= len(group) {
		return "", &RangeError{length, index}
	}
	return group[index], nil
}

// IndexOf returns the position of word inside its length group. The
// first letter is compared case-insensitively, the rest exactly.
func (d *Dictionary) IndexOf(word string) (int, bool) {
	pos, ok := d.index[capitalize(word)]
	return pos, ok
}

// Word maps a global index to its word.
func (d *Dictionary) Word(v uint16) string {
	idx := int(v)
	for l := d.minLength; l <= d.maxLength; l++ {
		n := len(d.words[l-d.minLength])
		if idx < n {
			return d.words[l-d.minLength][idx]
		}
		idx -= n
	}
	// unreachable for a dictionary of DictionarySize words
	return ""
}

// Index is the inverse of Word.
func (d *Dictionary) Index(word string) (uint16, bool) {
	w := capitalize(word)
	pos, ok := d.index[w]
	if !ok {
		return 0, false
	}
	l := utf8.RuneCountInString(w)
	return uint16(pos + d.awords[l-d.minLength]), true
}

func capitalize(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	upper := unicode.ToUpper(first)
	if upper == first {
		return w
	}
	return string(upper) + w[size:]
}

func decapitalize(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	lower := unicode.ToLower(first)
	if lower == first {
		return w
	}
	return string(lower) + w[size:]
}
