package text

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordList() string {
	return "# test words\n\n" + strings.Join(mixedWords(), "\r\n") + "\n"
}

func assertSameDictionary(t *testing.T, want, got *Dictionary) {
	t.Helper()
	require.Equal(t, want.MinLength(), got.MinLength())
	require.Equal(t, want.MaxLength(), got.MaxLength())
	for _, v := range []uint16{0, 1, 17575, 17576, 40000, 0xFFFF} {
		assert.Equal(t, want.Word(v), got.Word(v))
	}
}

func TestLoadDictionaryPlain(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(wordList()))
	require.NoError(t, err)
	assertSameDictionary(t, mixedDict(t), d)
}

func TestLoadDictionaryBlob(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDictionary(&buf, mixedDict(t)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "3:AaaAabAac"))
	assert.True(t, strings.HasPrefix(lines[2], "4:AaaaAaab"))

	d, err := LoadDictionary(&buf)
	require.NoError(t, err)
	assertSameDictionary(t, mixedDict(t), d)
}

func TestLoadDictionaryBlobErrors(t *testing.T) {
	_, err := LoadDictionary(strings.NewReader("3:AaaAabAa\n"))
	var de *DictionaryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Aa", de.Word)
	assert.Contains(t, err.Error(), "line 1")

	_, err = LoadDictionary(strings.NewReader("0:Aaa\n"))
	assert.ErrorIs(t, err, ErrDictionaryIntegrity)

	// a well-formed list that is too short
	_, err = LoadDictionary(strings.NewReader("3:AaaAab\n"))
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Total)
}

func TestLoadDictionaryFile(t *testing.T) {
	dir := t.TempDir()
	plain := []byte(wordList())

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(plain)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll(plain, nil)
	require.NoError(t, enc.Close())

	files := map[string][]byte{
		"words.txt":    plain,
		"words.txt.gz": gz.Bytes(),
		"words.zst":    zst,
	}
	for name, content := range files {
		filename := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(filename, content, 0600))
		d, err := LoadDictionaryFile(filename)
		require.NoError(t, err, name)
		assertSameDictionary(t, mixedDict(t), d)
	}
}

func TestLoadDictionaryFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDictionaryFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.gz")
	require.NoError(t, os.WriteFile(broken, []byte("not gzip"), 0600))
	_, err = LoadDictionaryFile(broken)
	assert.Error(t, err)

	short := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(short, []byte("Aaa\nAab\n"), 0600))
	_, err = LoadDictionaryFile(short)
	assert.ErrorIs(t, err, ErrDictionaryIntegrity)
	assert.Contains(t, err.Error(), short)
}
