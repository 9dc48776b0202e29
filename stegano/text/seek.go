package text

import (
	"strings"
	"unicode/utf8"

	sutil "wordveil/stegano/util"
	"wordveil/util"
)

// PaddingMode selects how the decoder recognises the padding flag.
type PaddingMode uint8

const (
	// PaddingTerminal looks for '!' only after the last word.
	PaddingTerminal = PaddingMode(iota)
	// PaddingLegacy treats a '!' anywhere in the text as the padding
	// flag. Interior exclamation marks make it drop a real byte; kept
	// for compatibility with texts checked by older readers.
	PaddingLegacy
)

func (m PaddingMode) String() string {
	switch m {
	case PaddingTerminal:
		return "terminal"
	case PaddingLegacy:
		return "legacy"
	}
	return "unknown"
}

type Decoder struct {
	dict    *Dictionary
	strict  bool
	padding PaddingMode
	logger  *util.Logger
}

type DecoderOption func(*Decoder)

// WithStrict makes unknown words fail the decoding (the default). In
// lenient mode they are logged and skipped, which loses two bytes each.
func WithStrict(strict bool) DecoderOption {
	return func(d *Decoder) {
		d.strict = strict
	}
}

func WithPadding(m PaddingMode) DecoderOption {
	return func(d *Decoder) {
		d.padding = m
	}
}

func WithDecoderLogger(l *util.Logger) DecoderOption {
	return func(d *Decoder) {
		d.logger = l
	}
}

func NewDecoder(dict *Dictionary, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		dict:    dict,
		strict:  true,
		padding: PaddingTerminal,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SeekText recovers the payload of cover and returns it in transport form.
func (d *Decoder) SeekText(cover string, t sutil.Transport) (string, error) {
	data, err := d.Seek(cover)
	if err != nil {
		return "", err
	}
	return t.Encode(data)
}

// Seek recovers the bytes hidden in cover. No randomness is involved:
// the same text always yields the same bytes.
func (d *Decoder) Seek(cover string) ([]byte, error) {
	cover = util.FixUnicode(cover)
	ct := make([]byte, 0, 2*strings.Count(cover, " ")+2)
	tail := 0 // end of the last token
	skipped := 0

	for tok := range Tokens(cover) {
		tail = tok.Offset + len(tok.Word)
		v, ok := d.lookup(tok.Word)
		if !ok {
			if d.strict {
				return nil, &LookupError{tok.Word, tok.Offset}
			}
			d.logger.LogWarningf("bogus word %q at offset %d skipped", tok.Word, tok.Offset)
			skipped++
			continue
		}
		ct = append(ct, byte(v>>8), byte(v&0xFF))
	}

	if d.padded(cover, tail) && len(ct) > 0 {
		ct = ct[:len(ct)-1]
	}
	if skipped > 0 {
		d.logger.LogWarningf("%d words skipped, payload is likely damaged", skipped)
	}
	return ct, nil
}

func (d *Decoder) lookup(word string) (uint16, bool) {
	if l := utf8.RuneCountInString(word); l < d.dict.MinLength() || l > d.dict.MaxLength() {
		return 0, false
	}
	return d.dict.Index(word)
}

func (d *Decoder) padded(cover string, tail int) bool {
	if d.padding == PaddingLegacy {
		return strings.Contains(cover, PaddedMark)
	}
	return strings.Contains(cover[tail:], PaddedMark)
}
