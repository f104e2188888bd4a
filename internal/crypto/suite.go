package crypto

import (
	"crypto/cipher"
	"fmt"
)

// Suite names the AEAD construction used to seal a packet. The string value
// is what appears in the packet's cipher field.
type Suite string

const (
	// SuiteAES256GCM is AES-256 in Galois/Counter Mode. It is the default
	// when a packet carries no cipher field.
	SuiteAES256GCM Suite = "AES-256-GCM"
	// SuiteXChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	SuiteXChaCha20Poly1305 Suite = "XChaCha20-Poly1305"
)

// ParseSuite resolves a cipher name. The empty string selects [SuiteAES256GCM].
func ParseSuite(name string) (Suite, error) {
	switch Suite(name) {
	case "", SuiteAES256GCM:
		return SuiteAES256GCM, nil
	case SuiteXChaCha20Poly1305:
		return SuiteXChaCha20Poly1305, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

// NonceSize returns the nonce length the suite requires, or 0 for an
// unknown suite.
func (s Suite) NonceSize() int {
	switch s {
	case SuiteAES256GCM:
		return AESNonceSize
	case SuiteXChaCha20Poly1305:
		return XChaChaNonceSize
	}
	return 0
}

func (s Suite) newAEAD(key []byte) (cipher.AEAD, error) {
	switch s {
	case SuiteAES256GCM:
		return newAESGCM(key)
	case SuiteXChaCha20Poly1305:
		return newXChaCha20Poly1305(key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, string(s))
}
