package pixelkey

import (
	"encoding/json"
	"fmt"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
)

// PacketVersion is the current packet format version.
const PacketVersion = 1

// Packet fields as they appear in JSON.
const (
	fieldCiphertext   = "ciphertext_b64"
	fieldNonce        = "hidden_nonce_b64"
	fieldRegionCoords = "region_coords"
	fieldVersion      = "version"
	fieldCipher       = "cipher"
	fieldSignature    = "signature_b64"
	fieldSignerKey    = "signer_pk_b64"
)

// Packet is the portable result of an encryption. It carries everything
// decryption needs except the image itself.
type Packet struct {
	// Ciphertext is ciphertext || tag, base64url-encoded.
	Ciphertext string `json:"ciphertext_b64"`
	// Nonce is the AEAD nonce, base64url-encoded. It is not secret.
	Nonce string `json:"hidden_nonce_b64"`
	// RegionCoords is [x, y, w, h]. A nil slice means the field is absent.
	RegionCoords []int `json:"region_coords"`
	// Version is the packet format version. Zero is read as 1.
	Version int `json:"version,omitempty"`
	// Cipher is the AEAD name. Empty is read as AES-256-GCM.
	Cipher string `json:"cipher,omitempty"`
	// Signature is an optional ML-DSA-65 signature, base64url-encoded.
	Signature string `json:"signature_b64,omitempty"`
	// SignerPublicKey is the ML-DSA-65 key that made Signature, base64url-encoded.
	SignerPublicKey string `json:"signer_pk_b64,omitempty"`
}

// DecodedPacket is a packet whose fields have all been validated and decoded.
type DecodedPacket struct {
	// Sealed is ciphertext || tag.
	Sealed          []byte
	Nonce           []byte
	Region          Region
	Version         int
	Cipher          Cipher
	Signature       []byte
	SignerPublicKey []byte
}

// EncodePacket assembles a packet from sealed output (ciphertext || tag),
// its nonce, the region the key came from and the cipher used.
func EncodePacket(sealed, nonce []byte, region Region, cipher Cipher) *Packet {
	return &Packet{
		Ciphertext:   crypto.ToBase64URL(sealed),
		Nonce:        crypto.ToBase64URL(nonce),
		RegionCoords: region.Coords(),
		Version:      PacketVersion,
		Cipher:       string(cipher),
	}
}

// ParsePacket unmarshals a JSON packet. Absent required fields are reported
// before fields of the wrong JSON type; value checks are left to
// [Packet.Decode].
func ParsePacket(data []byte) (*Packet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &PacketError{Field: "packet", Err: ErrMalformedField, Detail: err.Error()}
	}

	for _, req := range []struct {
		name string
		err  error
	}{
		{fieldCiphertext, ErrMissingCiphertext},
		{fieldNonce, ErrMissingNonce},
		{fieldRegionCoords, ErrMissingRegionCoords},
	} {
		if v, ok := raw[req.name]; !ok || string(v) == "null" {
			return nil, &PacketError{Field: req.name, Err: req.err}
		}
	}

	var p Packet
	for _, f := range []struct {
		name string
		dst  any
	}{
		{fieldCiphertext, &p.Ciphertext},
		{fieldNonce, &p.Nonce},
		{fieldRegionCoords, &p.RegionCoords},
		{fieldVersion, &p.Version},
		{fieldCipher, &p.Cipher},
		{fieldSignature, &p.Signature},
		{fieldSignerKey, &p.SignerPublicKey},
	} {
		v, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return nil, &PacketError{Field: f.name, Err: ErrMalformedField, Detail: err.Error()}
		}
	}

	return &p, nil
}

// Marshal returns the JSON form of the packet.
func (p *Packet) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Decode validates every field of the packet, in order, and returns the
// decoded values. Missing required fields are reported before malformed
// ones. A nil packet is treated as one with every field missing.
func (p *Packet) Decode() (*DecodedPacket, error) {
	if p == nil {
		p = &Packet{}
	}

	// Step 1: required fields must be present.
	if p.Ciphertext == "" {
		return nil, &PacketError{Field: fieldCiphertext, Err: ErrMissingCiphertext}
	}
	if p.Nonce == "" {
		return nil, &PacketError{Field: fieldNonce, Err: ErrMissingNonce}
	}
	if p.RegionCoords == nil {
		return nil, &PacketError{Field: fieldRegionCoords, Err: ErrMissingRegionCoords}
	}

	// Step 2: format version and cipher.
	version := p.Version
	if version == 0 {
		version = PacketVersion
	}
	if version != PacketVersion {
		return nil, &PacketError{Field: fieldVersion, Err: ErrUnsupportedVersion, Detail: fmt.Sprintf("got %d, want %d", p.Version, PacketVersion)}
	}

	suite, err := crypto.ParseSuite(p.Cipher)
	if err != nil {
		return nil, &PacketError{Field: fieldCipher, Err: ErrMalformedField, Detail: err.Error()}
	}

	// Step 3: region coordinates.
	region, err := regionFromCoords(p.RegionCoords)
	if err != nil {
		return nil, &PacketError{Field: fieldRegionCoords, Err: ErrMalformedField, Detail: err.Error()}
	}

	// Step 4: binary fields.
	sealed, err := crypto.DecodeBase64(p.Ciphertext)
	if err != nil {
		return nil, &PacketError{Field: fieldCiphertext, Err: ErrMalformedField, Detail: "invalid base64"}
	}

	nonce, err := crypto.DecodeBase64(p.Nonce)
	if err != nil {
		return nil, &PacketError{Field: fieldNonce, Err: ErrMalformedField, Detail: "invalid base64"}
	}
	if len(nonce) != suite.NonceSize() {
		return nil, &PacketError{Field: fieldNonce, Err: ErrMalformedField, Detail: fmt.Sprintf("size %d, expected %d", len(nonce), suite.NonceSize())}
	}

	decoded := &DecodedPacket{
		Sealed:  sealed,
		Nonce:   nonce,
		Region:  region,
		Version: version,
		Cipher:  Cipher(suite),
	}
	if _, err := decoded.aad(); err != nil {
		return nil, err
	}

	// Step 5: optional signature, all or nothing.
	if p.Signature == "" && p.SignerPublicKey == "" {
		return decoded, nil
	}
	if p.Signature == "" || p.SignerPublicKey == "" {
		return nil, &PacketError{Field: fieldSignature, Err: ErrMalformedField, Detail: "signature and signer key must be present together"}
	}

	sig, err := crypto.DecodeBase64(p.Signature)
	if err != nil || len(sig) != crypto.MLDSASignatureSize {
		return nil, &PacketError{Field: fieldSignature, Err: ErrMalformedField, Detail: "invalid signature encoding or size"}
	}
	signerPk, err := crypto.DecodeBase64(p.SignerPublicKey)
	if err != nil || len(signerPk) != crypto.MLDSAPublicKeySize {
		return nil, &PacketError{Field: fieldSignerKey, Err: ErrMalformedField, Detail: "invalid public key encoding or size"}
	}

	decoded.Signature = sig
	decoded.SignerPublicKey = signerPk
	return decoded, nil
}

// aad returns the associated data the packet was sealed with.
func (d *DecodedPacket) aad() ([]byte, error) {
	r := d.Region
	aad, err := crypto.BuildAAD(d.Version, crypto.Suite(d.Cipher), r.X, r.Y, r.Width, r.Height)
	if err != nil {
		return nil, &PacketError{Field: fieldRegionCoords, Err: ErrMalformedField, Detail: err.Error()}
	}
	return aad, nil
}

// transcript is the message covered by the packet signature.
func (d *DecodedPacket) transcript() ([]byte, error) {
	aad, err := d.aad()
	if err != nil {
		return nil, err
	}
	return crypto.BuildTranscript(aad, d.Nonce, d.Sealed), nil
}
