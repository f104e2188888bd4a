package crypto

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// RegionKeyContext is the HKDF info string used when deriving a key
	// from region samples.
	RegionKeyContext = "pixelkey:region-key:v1"

	// AADContext prefixes the associated data of every sealed packet.
	AADContext = "pixelkey:v"

	// KeySize is the size of a derived region key in bytes. Both AEAD suites
	// take a 256-bit key.
	KeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// XChaChaNonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	XChaChaNonceSize = chacha20poly1305.NonceSizeX
	// TagSize is the size of the authentication tag appended by both suites.
	TagSize = 16

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = mldsa65.PublicKeySize
	// MLDSAPrivateKeySize is the size of a packed ML-DSA-65 private key in bytes.
	MLDSAPrivateKeySize = mldsa65.PrivateKeySize
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = mldsa65.SignatureSize
)
