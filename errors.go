package pixelkey

import (
	"errors"
	"fmt"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
	"github.com/pixelkey/pixelkey-go/internal/imaging"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCiphertext is returned when a packet has no ciphertext_b64 field.
	ErrMissingCiphertext = errors.New("packet missing ciphertext_b64")

	// ErrMissingNonce is returned when a packet has no hidden_nonce_b64 field.
	ErrMissingNonce = errors.New("packet missing hidden_nonce_b64")

	// ErrMissingRegionCoords is returned when a packet has no region_coords field.
	ErrMissingRegionCoords = errors.New("packet missing region_coords")

	// ErrMalformedField is returned when a packet field is present but invalid.
	ErrMalformedField = errors.New("malformed packet field")

	// ErrUnsupportedVersion is returned for a packet version this package
	// cannot read. It also matches ErrMalformedField.
	ErrUnsupportedVersion = errors.New("unsupported packet version")

	// ErrUnknownCipher is returned when encryption is asked for a cipher
	// this package does not implement.
	ErrUnknownCipher = errors.New("unknown cipher")

	// ErrRegionOutOfBounds is returned when a region is not fully inside the image.
	ErrRegionOutOfBounds = errors.New("region out of bounds")

	// ErrEmptyRegion is returned when a region has zero width or height.
	ErrEmptyRegion = errors.New("empty region")

	// ErrAuthenticationFailed is returned when a packet does not authenticate
	// under the key derived from the image.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrImageLoad is returned when the image file is missing or corrupt.
	ErrImageLoad = errors.New("image load failed")

	// ErrInvalidSigningKey is returned for a malformed signing key or trusted
	// signer public key.
	ErrInvalidSigningKey = errors.New("invalid signing key")

	// ErrSignatureInvalid is returned when a packet signature does not verify.
	ErrSignatureInvalid = errors.New("packet signature verification failed")

	// ErrSignatureRequired is returned when a trusted signer is configured
	// but the packet is unsigned.
	ErrSignatureRequired = errors.New("packet signature required")

	// ErrSignerMismatch is returned when a packet was signed by a key other
	// than the trusted signer.
	ErrSignerMismatch = errors.New("packet signer is not trusted")
)

// PixelKeyError is implemented by every error this package returns about
// its inputs: packets, regions, images, keys and options. A failure of the
// system random source is returned as is.
type PixelKeyError interface {
	error
	PixelKeyError() // marker method
}

// PacketError reports a structural problem with a packet, found before any
// cryptographic work.
type PacketError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Err is one of the packet sentinels.
	Err error
	// Detail optionally describes what was wrong with a present field.
	Detail string
}

func (e *PacketError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Detail)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel.
func (e *PacketError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PacketError) Is(target error) bool {
	return target == ErrMalformedField && e.Err == ErrUnsupportedVersion
}

// PixelKeyError implements the PixelKeyError interface.
func (e *PacketError) PixelKeyError() {}

// RegionError reports a region that cannot be sampled from an image.
type RegionError struct {
	Region Region
	// Width and Height are the image dimensions.
	Width  int
	Height int
	Err    error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("%v: region %s in %dx%d image", e.Err, e.Region, e.Width, e.Height)
}

// Unwrap returns the underlying sentinel.
func (e *RegionError) Unwrap() error {
	return e.Err
}

// PixelKeyError implements the PixelKeyError interface.
func (e *RegionError) PixelKeyError() {}

// AuthenticationError is returned when a packet fails to authenticate. It
// carries no detail. A wrong image, a wrong region or a tampered packet all
// produce the same error.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "authentication failed: packet does not match this image region"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// PixelKeyError implements the PixelKeyError interface.
func (e *AuthenticationError) PixelKeyError() {}

// ImageLoadError wraps a failure of the image loader.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("image load failed: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ImageLoadError) Is(target error) bool {
	return target == ErrImageLoad
}

// PixelKeyError implements the PixelKeyError interface.
func (e *ImageLoadError) PixelKeyError() {}

// SignatureError reports a packet signature problem.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel.
func (e *SignatureError) Unwrap() error {
	return e.Err
}

// PixelKeyError implements the PixelKeyError interface.
func (e *SignatureError) PixelKeyError() {}

// ConfigError reports an unusable setting passed through an [Option] or a
// key constructor.
type ConfigError struct {
	// Setting names what was wrong, such as "cipher" or "trusted signer".
	Setting string
	// Err is ErrUnknownCipher or ErrInvalidSigningKey.
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Setting, e.Detail)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Setting)
}

// Unwrap returns the underlying sentinel.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PixelKeyError implements the PixelKeyError interface.
func (e *ConfigError) PixelKeyError() {}

// wrapLoadError converts a loader failure into an *ImageLoadError. Loaders
// supplied through WithImageLoader may return any error.
func wrapLoadError(path string, err error) error {
	var loadErr *imaging.LoadError
	if errors.As(err, &loadErr) {
		return &ImageLoadError{Path: loadErr.Path, Err: loadErr.Err}
	}
	return &ImageLoadError{Path: path, Err: err}
}

// wrapRegionError converts internal sampling and derivation errors to
// public errors so that errors.Is() checks work with public sentinels.
func wrapRegionError(r Region, width, height int, err error) error {
	switch {
	case errors.Is(err, imaging.ErrRegionOutOfBounds):
		return &RegionError{Region: r, Width: width, Height: height, Err: ErrRegionOutOfBounds}
	case errors.Is(err, imaging.ErrEmptyRegion), errors.Is(err, crypto.ErrEmptyRegion):
		return &RegionError{Region: r, Width: width, Height: height, Err: ErrEmptyRegion}
	}
	return err
}

// wrapCryptoError converts internal crypto errors to public errors.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return &AuthenticationError{}
	}
	if errors.Is(err, crypto.ErrSignatureVerificationFailed) {
		return &SignatureError{Err: ErrSignatureInvalid}
	}

	return err
}
