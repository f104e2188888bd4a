// Package pixelkey encrypts byte payloads under a key derived from a
// rectangular region of a raster image.
//
// The image is the shared secret. Whoever holds the same image file and
// knows the region can decrypt; the packet on its own reveals nothing but
// the region coordinates, the cipher name and the nonce.
//
// Basic usage:
//
//	region := pixelkey.NewRegion(5, 5, 10, 10)
//	packet, err := pixelkey.EncryptWithImageKey([]byte("secret"), "photo.png", region)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := pixelkey.DecryptWithImageKey(packet, "photo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Derivation
//
// The region is sampled row by row, top to bottom, left to right. Each
// pixel contributes its 8-bit R, G and B values; alpha is ignored. The
// resulting bytes are fed to HKDF-SHA-512 to produce a 256-bit key. The same
// pixels always give the same key, and a single changed pixel gives an
// unrelated one.
//
// # Packets
//
// A [Packet] is a JSON record:
//
//	{
//	  "ciphertext_b64":   "...",          // ciphertext || tag, base64url
//	  "hidden_nonce_b64": "...",          // base64url
//	  "region_coords":    [x, y, w, h],
//	  "version":          1,
//	  "cipher":           "AES-256-GCM"
//	}
//
// The region coordinates, version and cipher are authenticated as
// associated data, so moving a ciphertext onto other coordinates makes
// decryption fail. Every field is validated by [Packet.Decode] before any
// image is loaded or any cryptography runs.
//
// # Errors
//
// Every failure can be matched with errors.Is against the sentinels in this
// package, for example [ErrMissingRegionCoords], [ErrRegionOutOfBounds] or
// [ErrAuthenticationFailed]. Authentication failures never say why the tag
// did not verify.
//
// # Concurrency
//
// The package holds no global state. Encrypt and decrypt calls are
// independent and may run concurrently; each opens its own image handle.
package pixelkey
