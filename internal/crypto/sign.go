package crypto

import (
	"bytes"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SigningKey is an ML-DSA-65 keypair used to sign packets.
type SigningKey struct {
	// PublicKey is the packed ML-DSA-65 public key.
	PublicKey []byte
	// PrivateKey is the packed ML-DSA-65 private key.
	PrivateKey []byte
}

// GenerateSigningKey creates a new ML-DSA-65 keypair.
func GenerateSigningKey() (*SigningKey, error) {
	pub, priv, err := mldsa65.GenerateKey(random())
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for keys from GenerateKey
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SigningKey{
		PublicKey:  pubBytes,
		PrivateKey: privBytes,
	}, nil
}

// SigningKeyFromBytes reconstructs a keypair from a packed private key.
func SigningKeyFromBytes(privateKey []byte) (*SigningKey, error) {
	if len(privateKey) != MLDSAPrivateKeySize {
		return nil, ErrInvalidPrivateKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	pub, ok := priv.Public().(*mldsa65.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type %T", priv.Public())
	}
	pubBytes, _ := pub.MarshalBinary()

	return &SigningKey{
		PublicKey:  pubBytes,
		PrivateKey: bytes.Clone(privateKey),
	}, nil
}

// Sign produces a deterministic ML-DSA-65 signature over message.
func (k *SigningKey) Sign(message []byte) ([]byte, error) {
	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(k.PrivateKey); err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	sig := make([]byte, MLDSASignatureSize)
	if err := mldsa65.SignTo(&priv, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify verifies an ML-DSA-65 signature (low-level function).
func Verify(publicKey, message, signature []byte) error {
	if len(publicKey) != MLDSAPublicKeySize {
		return ErrInvalidPublicKeySize
	}

	pk := &mldsa65.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}

	if !mldsa65.Verify(pk, message, nil, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}
