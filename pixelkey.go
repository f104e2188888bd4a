package pixelkey

import (
	"fmt"
	"image"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
	"github.com/pixelkey/pixelkey-go/internal/imaging"
)

// EncryptWithImageKey encrypts plaintext under the key derived from region
// of the image at imagePath and returns the resulting packet.
//
// The region must lie entirely inside the image; otherwise the error
// matches [ErrRegionOutOfBounds]. A zero-sized region matches
// [ErrEmptyRegion]. A missing or corrupt image matches [ErrImageLoad].
func EncryptWithImageKey(plaintext []byte, imagePath string, region Region, opts ...Option) (*Packet, error) {
	cfg := newConfig(opts)

	img, err := cfg.loader.Load(imagePath)
	if err != nil {
		return nil, wrapLoadError(imagePath, err)
	}

	return encrypt(cfg, img, plaintext, region)
}

// DecryptWithImageKey recovers the plaintext of packet using the image at
// imagePath and the region recorded in the packet.
//
// The packet is fully validated before the image is opened; structural
// problems surface as a *PacketError. A packet that does not authenticate
// under the derived key, whatever the reason, matches
// [ErrAuthenticationFailed].
func DecryptWithImageKey(packet *Packet, imagePath string, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	if err := cfg.checkTrustedSigner(); err != nil {
		return nil, err
	}

	decoded, err := packet.Decode()
	if err != nil {
		return nil, err
	}
	if err := verifyPacket(decoded, cfg.trustedSigner, cfg.requireSigner); err != nil {
		return nil, err
	}

	img, err := cfg.loader.Load(imagePath)
	if err != nil {
		return nil, wrapLoadError(imagePath, err)
	}

	return decrypt(cfg, img, decoded)
}

// EncryptImage is [EncryptWithImageKey] for an image that is already decoded.
func EncryptImage(img image.Image, plaintext []byte, region Region, opts ...Option) (*Packet, error) {
	return encrypt(newConfig(opts), img, plaintext, region)
}

// DecryptImage is [DecryptWithImageKey] for an image that is already decoded.
func DecryptImage(img image.Image, packet *Packet, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	if err := cfg.checkTrustedSigner(); err != nil {
		return nil, err
	}

	decoded, err := packet.Decode()
	if err != nil {
		return nil, err
	}
	if err := verifyPacket(decoded, cfg.trustedSigner, cfg.requireSigner); err != nil {
		return nil, err
	}

	return decrypt(cfg, img, decoded)
}

// DeriveRegionKey returns the key a packet for region of img would be
// sealed with. Callers should zero the key once done with it.
func DeriveRegionKey(img image.Image, region Region) ([]byte, error) {
	return regionKey(img, region)
}

func encrypt(cfg *config, img image.Image, plaintext []byte, region Region) (*Packet, error) {
	suite, err := crypto.ParseSuite(string(cfg.cipher))
	if err != nil {
		return nil, &ConfigError{Setting: "cipher", Err: ErrUnknownCipher, Detail: fmt.Sprintf("%q", cfg.cipher)}
	}

	key, err := regionKey(img, region)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aad, err := crypto.BuildAAD(PacketVersion, suite, region.X, region.Y, region.Width, region.Height)
	if err != nil {
		return nil, fmt.Errorf("build associated data: %w", err)
	}

	nonce, err := crypto.NewNonce(suite)
	if err != nil {
		return nil, err
	}

	sealed, err := crypto.Seal(suite, key, nonce, plaintext, aad)
	if err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}

	packet := EncodePacket(sealed, nonce, region, Cipher(suite))

	if cfg.signingKey != nil {
		if err := signPacket(cfg.signingKey, packet); err != nil {
			return nil, err
		}
	}

	cfg.logger.Debug().
		Stringer("region", region).
		Str("cipher", string(suite)).
		Int("plaintext_len", len(plaintext)).
		Bool("signed", cfg.signingKey != nil).
		Msg("packet sealed")

	return packet, nil
}

func decrypt(cfg *config, img image.Image, d *DecodedPacket) ([]byte, error) {
	key, err := regionKey(img, d.Region)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aad, err := d.aad()
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Open(crypto.Suite(d.Cipher), key, d.Nonce, d.Sealed, aad)
	if err != nil {
		cfg.logger.Debug().
			Stringer("region", d.Region).
			Str("cipher", string(d.Cipher)).
			Msg("packet failed to authenticate")
		return nil, wrapCryptoError(err)
	}

	cfg.logger.Debug().
		Stringer("region", d.Region).
		Str("cipher", string(d.Cipher)).
		Int("plaintext_len", len(plaintext)).
		Msg("packet opened")

	return plaintext, nil
}

// regionKey samples region of img and derives its key. The sample buffer is
// wiped before returning.
func regionKey(img image.Image, region Region) ([]byte, error) {
	bounds := img.Bounds()

	samples, err := imaging.Sample(img, region.rect())
	if err != nil {
		return nil, wrapRegionError(region, bounds.Dx(), bounds.Dy(), err)
	}
	defer crypto.Wipe(samples)

	key, err := crypto.DeriveRegionKey(samples)
	if err != nil {
		return nil, wrapRegionError(region, bounds.Dx(), bounds.Dy(), err)
	}
	return key, nil
}
