package text

import (
	"strings"
	"time"
	"unicode/utf8"

	sutil "wordveil/stegano/util"
	"wordveil/util"
)

const (
	DefaultLineWidth = 72

	// sentence length in words is drawn from [minSentence, minSentence+sentenceSpread]
	minSentence    = 3
	sentenceSpread = 9
	// the first paragraph holds 3-12 sentences, the following ones 2-10
	firstParagraphMin    = 3
	firstParagraphSpread = 9
	paragraphMin         = 2
	paragraphSpread      = 8
	// a sentence ends in '.' for draws 0-13 of 0-15, '?' for 14, '!' for 15
	punctuationSpread = 15
	questionDraw      = 14
	// one in seven mid-sentence words is followed by a comma
	commaSpread = 6

	EndMark    = "."
	PaddedMark = "!"
)

type Encoder struct {
	dict   *Dictionary
	width  int
	seed   func() int64
	logger *util.Logger
}

type EncoderOption func(*Encoder)

// WithLineWidth wraps lines at w characters; w <= 0 disables wrapping.
func WithLineWidth(w int) EncoderOption {
	return func(e *Encoder) {
		e.width = w
	}
}

// WithSeed replaces the wall clock as the source of generator seeds.
func WithSeed(seed func() int64) EncoderOption {
	return func(e *Encoder) {
		e.seed = seed
	}
}

func WithEncoderLogger(l *util.Logger) EncoderOption {
	return func(e *Encoder) {
		e.logger = l
	}
}

func NewEncoder(dict *Dictionary, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		dict:  dict,
		width: DefaultLineWidth,
		seed: func() int64 {
			ms := time.Now().UnixMilli()
			if DegenerateSeed(ms) {
				ms++
			}
			return ms
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CoverWords returns how many words carry an n-byte payload.
func CoverWords(n int) int {
	return (n + 1) / 2
}

// HideText decodes a hex or base64 payload and hides it.
func (e *Encoder) HideText(payload string, t sutil.Transport) (string, error) {
	data, err := t.Decode(payload)
	if err != nil {
		return "", err
	}
	return e.Hide(data), nil
}

/*
 * Hide turns data into cover text. Each big-endian byte pair selects one
 * word. Sentence, comma and paragraph decisions come from a fresh
 * generator and carry no information, except for the mark after the
 * very last word: '!' when a zero byte was appended to make the length
 * even, '.' otherwise.
 */
func (e *Encoder) Hide(data []byte) string {
	ct := make([]byte, len(data), len(data)+1)
	copy(ct, data)
	padded := false
	if len(ct)%2 == 1 {
		ct = append(ct, 0)
		padded = true
	}

	rng := NewLEcuyer(e.seed())
	var (
		out           strings.Builder
		line          strings.Builder
		lineLen       int
		sentenceWords int
		sentences     int
	)
	paragraphLen := rng.Intn(firstParagraphSpread) + firstParagraphMin
	sentenceLen := rng.Intn(sentenceSpread) + minSentence

	flush := func(sep string) {
		out.WriteString(line.String())
		out.WriteString(sep)
		line.Reset()
		lineLen = 0
	}

	for i := 0; i < len(ct); i += 2 {
		w := e.dict.Word(uint16(ct[i])<<8 | uint16(ct[i+1]))
		if sentenceWords != 0 {
			w = decapitalize(w)
		}

		paragraph := false
		if i == len(ct)-2 {
			if padded {
				w += PaddedMark
			} else {
				w += EndMark
			}
		} else {
			sentenceWords++
			if sentenceWords >= sentenceLen {
				switch p := rng.Intn(punctuationSpread); {
				case p < questionDraw:
					w += "."
				case p == questionDraw:
					w += "?"
				default:
					w += "!"
				}
				sentenceWords = 0
				sentenceLen = rng.Intn(sentenceSpread) + minSentence
				sentences++
				if sentences >= paragraphLen {
					paragraph = true
					sentences = 0
				}
			} else if rng.Intn(commaSpread) == commaSpread {
				w += ","
			}
		}

		wLen := utf8.RuneCountInString(w)
		if e.width > 0 && lineLen > 0 && lineLen+wLen+1 > e.width {
			flush("\n")
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(w)
		lineLen += wLen

		if paragraph {
			flush("\n\n")
			paragraphLen = rng.Intn(paragraphSpread) + paragraphMin
		}
	}
	out.WriteString(line.String())

	e.logger.LogInfof("hid %d bytes in %d words (padded: %v)", len(data), len(ct)/2, padded)
	return out.String()
}
