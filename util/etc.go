package util

import (
	"golang.org/x/text/unicode/norm"
)

// FixUnicode returns the NFC form of in, so that words typed or
// copied from a rendered page compare equal to dictionary entries.
func FixUnicode(in string) string {
	return norm.NFC.String(in)
}
