// Package crypto provides the cryptographic primitives behind PixelKey
// packets: region key derivation, authenticated encryption and optional
// packet signatures.
//
// # Algorithm Suite
//
//   - HKDF-SHA-512 (RFC 5869): derives a 256-bit key from the sampled pixel
//     bytes of an image region, with the fixed info string
//     [RegionKeyContext] for domain separation.
//
//   - AES-256-GCM: default AEAD for packet payloads. 96-bit nonce.
//
//   - XChaCha20-Poly1305: alternative AEAD with a 192-bit nonce, selected
//     per packet through its cipher field.
//
//   - ML-DSA-65 (NIST FIPS 204): optional signatures over the packet
//     transcript, proving which key holder produced a packet.
//
// # Security Model
//
// The image region is the only secret. Packets carry everything else in the
// clear: the nonce, the region coordinates and the cipher name. Coordinates,
// version and cipher are bound into the AEAD associated data (see [BuildAAD]),
// so none of them can be altered without [Open] failing.
//
// Nonces MUST be unique for each encryption with the same key. Because the
// key is a pure function of the pixels, every packet made from the same
// region shares a key, and [NewNonce] draws a fresh random nonce per call.
//
// Derived keys should be passed to [Wipe] once the caller is done with them.
//
// # Base64 Encoding
//
// Binary packet fields are written with [ToBase64URL] (URL-safe, no padding)
// and read with [DecodeBase64], which also accepts padded and standard
// alphabets.
package crypto
