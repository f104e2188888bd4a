package crypto

import "errors"

var (
	// ErrEmptyRegion is returned when key derivation is given no samples.
	ErrEmptyRegion = errors.New("empty region: no samples to derive a key from")

	// ErrDecryptionFailed is returned when an AEAD tag does not verify.
	// It is deliberately the same error for every cause.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AEAD key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size does not match the suite.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrUnknownSuite is returned for a cipher name this package does not implement.
	ErrUnknownSuite = errors.New("unknown cipher suite")

	// ErrInvalidPublicKeySize is returned when a signer public key has the wrong size.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPrivateKeySize is returned when a signing key has the wrong size.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrRegionTooLarge is returned when a region coordinate does not fit the
	// 32-bit associated data encoding.
	ErrRegionTooLarge = errors.New("region coordinate exceeds 32 bits")
)
