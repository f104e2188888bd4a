package pixelkey

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
	"github.com/pixelkey/pixelkey-go/internal/imaging"
)

// Cipher names the authenticated encryption algorithm of a packet.
type Cipher string

const (
	// CipherAES256GCM is AES-256-GCM with a 12-byte nonce. It is the default.
	CipherAES256GCM = Cipher(crypto.SuiteAES256GCM)
	// CipherXChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	CipherXChaCha20Poly1305 = Cipher(crypto.SuiteXChaCha20Poly1305)
)

// ImageLoader opens the image an encrypt or decrypt call samples from.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// config holds the settings of one encrypt or decrypt call.
type config struct {
	cipher        Cipher
	loader        ImageLoader
	logger        zerolog.Logger
	signingKey    *SigningKey
	trustedSigner []byte
	requireSigner bool
}

// Option configures an encrypt or decrypt call.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		cipher: CipherAES256GCM,
		loader: imaging.NewLoader(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCipher selects the AEAD used for encryption. Decryption always uses
// the cipher recorded in the packet.
func WithCipher(c Cipher) Option {
	return func(cfg *config) {
		cfg.cipher = c
	}
}

// WithImageLoader replaces the default file loader.
func WithImageLoader(l ImageLoader) Option {
	return func(cfg *config) {
		cfg.loader = l
	}
}

// WithLogger sets the logger for debug events. Keys, nonces and plaintext
// are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithSigningKey signs every packet produced by an encrypt call.
func WithSigningKey(k *SigningKey) Option {
	return func(cfg *config) {
		cfg.signingKey = k
	}
}

// WithTrustedSigner makes decryption require a valid signature by the given
// ML-DSA-65 public key. A key that is not a well-formed public key, including
// an empty one, makes every decrypt call fail with [ErrInvalidSigningKey].
func WithTrustedSigner(publicKey []byte) Option {
	return func(cfg *config) {
		cfg.trustedSigner = publicKey
		cfg.requireSigner = true
	}
}

// checkTrustedSigner validates the key set by WithTrustedSigner.
func (cfg *config) checkTrustedSigner() error {
	if !cfg.requireSigner {
		return nil
	}
	if len(cfg.trustedSigner) != crypto.MLDSAPublicKeySize {
		return &ConfigError{
			Setting: "trusted signer",
			Err:     ErrInvalidSigningKey,
			Detail:  fmt.Sprintf("public key is %d bytes, want %d", len(cfg.trustedSigner), crypto.MLDSAPublicKeySize),
		}
	}
	return nil
}
