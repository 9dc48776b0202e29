package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

/*
 * Dictionary files hold one word per line. Blank lines and lines
 * starting with '#' are ignored. A line of the form "<length>:<blob>"
 * carries a whole group of equally long words glued together.
 *
 * Files ending in .gz or .zst are decompressed on the fly.
 */
const (
	maxDictionaryLine = 16 << 20
)

func LoadDictionaryFile(filename string) (*Dictionary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer gz.Close()
		r = gz
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer dec.Close()
		r = dec
	}

	d, err := LoadDictionary(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

func LoadDictionary(r io.Reader) (*Dictionary, error) {
	words := make([]string, 0, DictionarySize)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxDictionaryLine)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if length, blob, ok := splitBlob(line); ok {
			group, err := unpackBlob(length, blob)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			words = append(words, group...)
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(words)
}

func splitBlob(line string) (int, string, bool) {
	head, blob, found := strings.Cut(line, ":")
	if !found {
		return 0, "", false
	}
	length, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", false
	}
	return length, blob, true
}

func unpackBlob(length int, blob string) ([]string, error) {
	if length <= 0 {
		return nil, &DictionaryError{Word: blob, Reason: "invalid word length " + strconv.Itoa(length)}
	}
	runes := []rune(blob)
	if len(runes)%length != 0 {
		return nil, &DictionaryError{
			Word:   string(runes[len(runes)-len(runes)%length:]),
			Reason: fmt.Sprintf("blob of %d-letter words has a trailing fragment", length),
		}
	}
	group := make([]string, 0, len(runes)/length)
	for i := 0; i < len(runes); i += length {
		group = append(group, string(runes[i:i+length]))
	}
	return group, nil
}

// WriteDictionary stores d in the blob layout understood by LoadDictionary.
func WriteDictionary(w io.Writer, d *Dictionary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d words, lengths %d-%d\n", d.total, d.minLength, d.maxLength)
	for l := d.minLength; l <= d.maxLength; l++ {
		group := d.words[l-d.minLength]
		if len(group) == 0 {
			continue
		}
		bw.WriteString(strconv.Itoa(l))
		bw.WriteByte(':')
		for _, word := range group {
			bw.WriteString(word)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
