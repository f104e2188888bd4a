package pixelkey

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
)

// SigningKey is an ML-DSA-65 keypair for signing packets. Signing is
// optional: it proves who produced a packet, while the image region alone
// still controls who can read it.
type SigningKey struct {
	// PublicKey is the packed public key to hand to [WithTrustedSigner].
	PublicKey []byte
	// PrivateKey is the packed private key. Keep it secret.
	PrivateKey []byte
}

// GenerateSigningKey creates a new ML-DSA-65 signing key.
func GenerateSigningKey() (*SigningKey, error) {
	k, err := crypto.GenerateSigningKey()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &SigningKey{PublicKey: k.PublicKey, PrivateKey: k.PrivateKey}, nil
}

// SigningKeyFromBytes restores a signing key from its packed private key.
func SigningKeyFromBytes(privateKey []byte) (*SigningKey, error) {
	k, err := crypto.SigningKeyFromBytes(privateKey)
	if err != nil {
		return nil, &ConfigError{Setting: "signing key", Err: ErrInvalidSigningKey, Detail: err.Error()}
	}
	return &SigningKey{PublicKey: k.PublicKey, PrivateKey: k.PrivateKey}, nil
}

// signPacket adds a signature over the decoded packet's transcript.
func signPacket(k *SigningKey, p *Packet) error {
	decoded, err := p.Decode()
	if err != nil {
		return err
	}
	transcript, err := decoded.transcript()
	if err != nil {
		return err
	}

	sig, err := (&crypto.SigningKey{PublicKey: k.PublicKey, PrivateKey: k.PrivateKey}).Sign(transcript)
	if err != nil {
		return &ConfigError{Setting: "signing key", Err: ErrInvalidSigningKey, Detail: err.Error()}
	}

	p.Signature = crypto.ToBase64URL(sig)
	p.SignerPublicKey = crypto.ToBase64URL(k.PublicKey)
	return nil
}

// verifyPacket checks the packet signature, and when require is set, that
// it was made by trusted. It runs before the image is loaded.
func verifyPacket(d *DecodedPacket, trusted []byte, require bool) error {
	if len(d.Signature) == 0 {
		if require {
			return &SignatureError{Err: ErrSignatureRequired}
		}
		return nil
	}

	if require && !bytes.Equal(trusted, d.SignerPublicKey) {
		return &SignatureError{Err: ErrSignerMismatch}
	}

	transcript, err := d.transcript()
	if err != nil {
		return err
	}

	if err := crypto.Verify(d.SignerPublicKey, transcript, d.Signature); err != nil {
		if errors.Is(err, crypto.ErrSignatureVerificationFailed) {
			return wrapCryptoError(err)
		}
		return &SignatureError{Err: fmt.Errorf("%w: %v", ErrSignatureInvalid, err)}
	}
	return nil
}
