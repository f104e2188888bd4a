package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	pixelkey "github.com/pixelkey/pixelkey-go"
	"github.com/pixelkey/pixelkey-go/internal/crypto"
)

func runEncrypt(args []string, cfg *Config) error {
	flags := &settings{}
	fs := newFlagSet("encrypt", cfg.Stderr)
	fs.StringVar(&flags.Image, "image", "", "path of the key image")
	fs.StringVar(&flags.Region, "region", "", "key region as x,y,w,h")
	fs.StringVar(&flags.Cipher, "cipher", "", "AES-256-GCM (default) or XChaCha20-Poly1305")
	fs.StringVar(&flags.SignKey, "sign-key", "", "sign the packet with the private key in this file")

	s, err := loadSettings(fs, flags, args, cfg.Env)
	if err != nil {
		return err
	}
	if err := s.validateEncrypt(); err != nil {
		return err
	}

	region, err := pixelkey.ParseRegion(s.Region)
	if err != nil {
		return err
	}

	log, err := s.logger(cfg.Stderr, "encrypt")
	if err != nil {
		return err
	}

	opts := []pixelkey.Option{pixelkey.WithLogger(log.Logger)}
	if s.Cipher != "" {
		opts = append(opts, pixelkey.WithCipher(pixelkey.Cipher(s.Cipher)))
	}
	if s.SignKey != "" {
		key, err := readSigningKey(s.SignKey)
		if err != nil {
			return err
		}
		opts = append(opts, pixelkey.WithSigningKey(key))
	}

	plaintext, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	packet, err := pixelkey.EncryptWithImageKey(plaintext, s.Image, region, opts...)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	data, err := packet.Marshal()
	if err != nil {
		return fmt.Errorf("encode packet: %w", err)
	}
	if _, err := fmt.Fprintf(cfg.Stdout, "%s\n", data); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}

	log.Info().Str("image", s.Image).Stringer("region", region).Msg("packet written")
	return nil
}

func runDecrypt(args []string, cfg *Config) error {
	flags := &settings{}
	fs := newFlagSet("decrypt", cfg.Stderr)
	fs.StringVar(&flags.Image, "image", "", "path of the key image")
	fs.StringVar(&flags.Signer, "signer", "", "require a signature by the public key in this file")

	s, err := loadSettings(fs, flags, args, cfg.Env)
	if err != nil {
		return err
	}
	if err := s.validateDecrypt(); err != nil {
		return err
	}

	log, err := s.logger(cfg.Stderr, "decrypt")
	if err != nil {
		return err
	}

	opts := []pixelkey.Option{pixelkey.WithLogger(log.Logger)}
	if s.Signer != "" {
		pub, err := readKeyFile(s.Signer, crypto.MLDSAPublicKeySize)
		if err != nil {
			return err
		}
		opts = append(opts, pixelkey.WithTrustedSigner(pub))
	}

	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	packet, err := pixelkey.ParsePacket(data)
	if err != nil {
		return fmt.Errorf("parse packet: %w", err)
	}

	plaintext, err := pixelkey.DecryptWithImageKey(packet, s.Image, opts...)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if _, err := cfg.Stdout.Write(plaintext); err != nil {
		return fmt.Errorf("write plaintext: %w", err)
	}

	log.Info().Str("image", s.Image).Msg("packet decrypted")
	return nil
}

func runKeygen(args []string, cfg *Config) error {
	flags := &settings{}
	fs := newFlagSet("keygen", cfg.Stderr)
	fs.StringVar(&flags.Out, "out", "", "private key file; the public key goes to <out>.pub")

	s, err := loadSettings(fs, flags, args, cfg.Env)
	if err != nil {
		return err
	}
	if err := s.validateOut(); err != nil {
		return err
	}

	key, err := pixelkey.GenerateSigningKey()
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Out, []byte(crypto.ToBase64URL(key.PrivateKey)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}
	pubPath := s.Out + ".pub"
	if err := os.WriteFile(pubPath, []byte(crypto.ToBase64URL(key.PublicKey)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	fmt.Fprintf(cfg.Stdout, "wrote %s and %s\n", s.Out, pubPath)
	return nil
}

func runFixture(args []string, cfg *Config) error {
	flags := &settings{}
	fs := newFlagSet("fixture", cfg.Stderr)
	fs.StringVar(&flags.Out, "out", "", "image file to write (.png, .bmp or .jpg)")
	fs.StringVar(&flags.Size, "size", "", "image size as WxH (default "+defaultFixtureSize+")")
	fs.StringVar(&flags.Color, "color", "", "fill colour as #rrggbb (default "+defaultFixtureColor+")")

	s, err := loadSettings(fs, flags, args, cfg.Env)
	if err != nil {
		return err
	}
	if err := s.validateOut(); err != nil {
		return err
	}
	if s.Size == "" {
		s.Size = defaultFixtureSize
	}
	if s.Color == "" {
		s.Color = defaultFixtureColor
	}

	width, height, err := parseSize(s.Size)
	if err != nil {
		return err
	}

	fill, err := colorful.Hex(s.Color)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s.Color)
	}
	r, g, b := fill.RGB255()

	img := imaging.New(width, height, color.NRGBA{R: r, G: g, B: b, A: 255})
	if err := imgio.Save(s.Out, img, fixtureEncoder(s.Out)); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Fprintf(cfg.Stdout, "wrote %dx%d %s image to %s\n", width, height, s.Color, s.Out)
	return nil
}

// fixtureEncoder picks the encoder from the file extension. JPEG is lossy,
// so a JPEG fixture's pixels are not exactly the requested colour.
func fixtureEncoder(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return imgio.BMPEncoder()
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95)
	}
	return imgio.PNGEncoder()
}

func readSigningKey(path string) (*pixelkey.SigningKey, error) {
	priv, err := readKeyFile(path, crypto.MLDSAPrivateKeySize)
	if err != nil {
		return nil, err
	}
	return pixelkey.SigningKeyFromBytes(priv)
}

// readKeyFile reads a base64url key written by keygen.
func readKeyFile(path string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	key, err := crypto.DecodeBase64(strings.TrimSpace(string(data)))
	if err != nil || len(key) != size {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, path)
	}
	return key, nil
}
