package util

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	randbytes := make([]byte, 128)
	_, err := rand.Read(randbytes)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		data   []byte
		status uint8
	}{
		{"Empty data", []byte{}, Stored},
		{"Small data", bytes.Repeat([]byte("a"), 150), Compressed},
		{"Large data", bytes.Repeat([]byte("a"), 1024), Compressed},
		{"Data not compressible", []byte{0x01, 0x02, 0x03, 0x04}, Stored},
		{"Random data", randbytes, Stored},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := Compress(tc.data)
			require.NoError(t, err)
			require.NotEmpty(t, packed)
			assert.Equal(t, tc.status, packed[0])
			if tc.status == Compressed {
				assert.Less(t, len(packed), len(tc.data))
			} else {
				assert.Len(t, packed, len(tc.data)+1)
			}

			unpacked, err := Decompress(packed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.data, unpacked), "compress/decompress breaks the data")
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	_, err := Decompress(nil)
	assert.Error(t, err)
	_, err = Decompress([]byte{7, 1, 2})
	assert.Error(t, err)
	_, err = Decompress([]byte{Compressed, 1, 2, 3})
	assert.Error(t, err)
}
