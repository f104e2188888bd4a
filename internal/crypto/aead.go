package crypto

import (
	"fmt"
	"io"
)

// NewNonce returns a fresh random nonce sized for suite.
func NewNonce(suite Suite) ([]byte, error) {
	size := suite.NonceSize()
	if size == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, string(suite))
	}

	nonce := make([]byte, size)
	if _, err := io.ReadFull(random(), nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}

// Seal encrypts plaintext under key and nonce, authenticating aad.
// Returns: ciphertext || tag (16 bytes)
func Seal(suite Suite, key, nonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := suite.newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), aead.NonceSize())
	}

	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open reverses [Seal]. Any authentication failure, including input shorter
// than the tag, yields [ErrDecryptionFailed] and no plaintext.
func Open(suite Suite, key, nonce, sealed, aad []byte) ([]byte, error) {
	aead, err := suite.newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), aead.NonceSize())
	}

	if len(sealed) < aead.Overhead() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
