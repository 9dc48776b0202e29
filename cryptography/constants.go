package cryptography

import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = chacha20poly1305.KeySize
	TagSize    = chacha20poly1305.Overhead
	NonceSize  = chacha20poly1305.NonceSize
	SaltSize   = 16

	// argon2id parameters; the draft RFC recommends time=3 and 32 MB of memory.
	argonTime   = 3
	argonMemory = 32 * 1024
)
