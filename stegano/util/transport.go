package util

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

/*
 * Transport encodings used to carry a payload as text before it is hidden
 * in (or after it is sought out of) a cover text. Ciphertext arrives from
 * the outside world either as hexadecimal or as base64.
 */
type Transport uint8

const (
	Hex = Transport(iota)
	Base64
)

const (
	// base64 output is wrapped after this many characters (48 input bytes).
	Base64LineLength = 64
)

var ErrFormat = errors.New("malformed transport text")

// FormatError reports malformed hexadecimal or base64 input.
type FormatError struct {
	Transport Transport
	Offset    int // byte offset of the problem in the input, -1 if unknown
	Reason    string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Transport, e.Reason)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Transport, e.Reason, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

func (t Transport) String() string {
	switch t {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("transport(%d)", uint8(t))
	}
}

// ParseTransport accepts the names used in configuration files and flags.
func ParseTransport(name string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex", "hexadecimal", "":
		return Hex, nil
	case "base64", "b64":
		return Base64, nil
	}
	return Hex, fmt.Errorf("unknown transport encoding %q", name)
}

func (t Transport) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Transport) UnmarshalText(b []byte) error {
	parsed, err := ParseTransport(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Decode converts transport text into raw bytes.
func (t Transport) Decode(s string) ([]byte, error) {
	switch t {
	case Hex:
		return HexToBytes(s)
	case Base64:
		return Base64ToBytes(s)
	}
	return nil, fmt.Errorf("unsupported transport %s", t)
}

// Encode converts raw bytes into transport text.
func (t Transport) Encode(data []byte) (string, error) {
	switch t {
	case Hex:
		return BytesToHex(data), nil
	case Base64:
		return BytesToBase64(data), nil
	}
	return "", fmt.Errorf("unsupported transport %s", t)
}

// BytesToHex returns two lowercase hex digits per byte.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// HexToBytes parses hexadecimal text. A leading 0x or 0X is skipped.
// Odd-length input is rejected rather than reinterpreted.
func HexToBytes(s string) ([]byte, error) {
	offset := 0
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		offset = 2
	}
	if len(s)%2 != 0 {
		return nil, &FormatError{Hex, -1, fmt.Sprintf("odd number of digits (%d)", len(s))}
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			idx := strings.IndexByte(s, byte(invalid))
			return nil, &FormatError{Hex, idx + offset, fmt.Sprintf("invalid digit %q", byte(invalid))}
		}
		return nil, &FormatError{Hex, -1, err.Error()}
	}
	return data, nil
}

// BytesToBase64 encodes with the standard alphabet and '=' padding and
// puts a line break after every full line of 64 characters.
func BytesToBase64(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	var sb strings.Builder
	sb.Grow(len(encoded) + len(encoded)/Base64LineLength)
	for len(encoded) >= Base64LineLength {
		sb.WriteString(encoded[:Base64LineLength])
		sb.WriteByte('\n')
		encoded = encoded[Base64LineLength:]
	}
	sb.WriteString(encoded)
	return sb.String()
}

// Base64ToBytes decodes groups of four base64 symbols, ignoring line breaks.
// Anything outside the alphabet aborts the decoding.
func Base64ToBytes(s string) ([]byte, error) {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n' || c == '\r':
			continue
		case isBase64Symbol(c) || c == '=':
			clean = append(clean, c)
		default:
			return nil, &FormatError{Base64, i, fmt.Sprintf("invalid symbol %q", c)}
		}
	}
	if len(clean)%4 != 0 {
		return nil, &FormatError{Base64, -1, fmt.Sprintf("incomplete group of %d symbols", len(clean)%4)}
	}
	data, err := base64.StdEncoding.DecodeString(string(clean))
	if err != nil {
		return nil, &FormatError{Base64, -1, err.Error()}
	}
	return data, nil
}

func isBase64Symbol(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') || c == '+' || c == '/'
}
