package util

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

/*
 * Optional payload compression. Every word of cover text carries only
 * two bytes, so shrinking the payload shortens the text. The first byte
 * tells whether the rest is compressed; data that does not shrink is
 * stored as is.
 */
const (
	Stored     = uint8(0)
	Compressed = uint8(1)
)

func Compress(data []byte) ([]byte, error) {
	compressed, err := compress(data)
	if err != nil {
		return nil, err
	}
	// check if we are able to decrease the total size of data
	if len(data) == 0 || len(compressed) >= len(data) {
		return append([]byte{Stored}, data...), nil
	}
	return append([]byte{Compressed}, compressed...), nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no compression header")
	}
	switch data[0] {
	case Stored:
		return data[1:], nil
	case Compressed:
	default:
		return nil, fmt.Errorf("unknown compression header %d", data[0])
	}

	gz, err := gzip.NewReader(bytes.NewReader(data[1:]))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, gz); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
