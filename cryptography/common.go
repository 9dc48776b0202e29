package cryptography

import (
	"crypto/rand"
	"fmt"
	"runtime"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

/*
 * Optional sealing of payloads before they are hidden. Cover text only
 * hides the fact that something was sent; whoever has the dictionary can
 * read the bytes back, so anything secret should be sealed first.
 */

// chacha20poly1305 encryption+authentication, output is nonce || ciphertext
func Encrypt(data, key []byte) ([]byte, error) {
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("invalid key size %d", len(key))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce, err := GenRandom(NonceSize)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, data, nil), nil
}

func Decrypt(data, key []byte) ([]byte, error) {
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("invalid key size %d", len(key))
	}
	if len(data) < NonceSize+TagSize {
		return nil, fmt.Errorf("invalid length of data")
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, data[:NonceSize], data[NonceSize:], nil)
}

// generate a random amount of bytes
func GenRandom(size uint) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("invalid size of random data")
	}
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return nil, err
	}
	return data, nil
}

// derive encryption key from password.
func DeriveKey(password, saltBytes []byte) []byte {
	threads := uint8(runtime.NumCPU())
	return argon2.IDKey(password, saltBytes, argonTime, argonMemory, threads, SymKeySize)
}

// Seal encrypts data under a passphrase: salt || nonce || ciphertext.
func Seal(passphrase, data []byte) ([]byte, error) {
	salt, err := GenRandom(SaltSize)
	if err != nil {
		return nil, err
	}
	ct, err := Encrypt(data, DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	return append(salt, ct...), nil
}

// Open reverses Seal.
func Open(passphrase, sealed []byte) ([]byte, error) {
	if len(sealed) < SaltSize+NonceSize+TagSize {
		return nil, fmt.Errorf("sealed data is too short (%d bytes)", len(sealed))
	}
	pt, err := Decrypt(sealed[SaltSize:], DeriveKey(passphrase, sealed[:SaltSize]))
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed data: wrong passphrase?")
	}
	return pt, nil
}
