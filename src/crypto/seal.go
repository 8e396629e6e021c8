// Package crypto wraps the Argon2id + ChaCha20-Poly1305 pairing the teacher
// repo used to turn a puzzle solution into a file-encryption key. Here it
// derives a wrapping key straight from a passphrase instead of a solved
// time-lock puzzle, and seals an arbitrary byte slice (the key-file's
// serialised field map) rather than a fixed-size symmetric key.
package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"rubbishrsa/src/types"
)

// DeriveKey runs Argon2id over passphrase and salt per params, returning a
// key sized for ChaCha20-Poly1305.
func DeriveKey(passphrase, salt []byte, params types.Argon2idParams) [32]byte {
	derived := argon2.IDKey(passphrase, salt, params.Time, params.Memory, params.Parallelism, params.KeyLen)
	var key [32]byte
	copy(key[:], derived)
	return key
}

// Seal encrypts and authenticates plaintext under key, returning the nonce
// it generated and the sealed output (ciphertext plus auth tag).
func Seal(key [32]byte, plaintext []byte) (nonce []byte, sealed []byte, err error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	sealed = aead.Seal(nil, nonce, plaintext, nil)
	return nonce, sealed, nil
}

// Open reverses Seal, failing if key or nonce don't match or sealed was
// tampered with.
func Open(key [32]byte, nonce, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, errors.New("crypto: wrong nonce size")
	}
	return aead.Open(nil, nonce, sealed, nil)
}
