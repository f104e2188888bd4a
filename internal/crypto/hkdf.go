package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// DeriveRegionKey maps the sampled bytes of an image region to a
// [KeySize]-byte AEAD key. The same samples always produce the same key.
func DeriveRegionKey(samples []byte) ([]byte, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyRegion
	}
	return DeriveKey(samples, nil, []byte(RegionKeyContext), KeySize)
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	clear(b)
}
