package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/pixelkey/pixelkey-go/internal/logger"
)

const envPrefix = "PIXELKEY_"

// Fixture defaults: the 20x20 red square used throughout the tests.
const (
	defaultFixtureSize  = "20x20"
	defaultFixtureColor = "#ff0000"
)

var (
	ErrMissingImage  = errors.New("missing -image")
	ErrMissingRegion = errors.New("missing -region")
	ErrMissingOut    = errors.New("missing -out")
	ErrInvalidSize   = errors.New("invalid -size, want WxH with positive sides")
	ErrInvalidColor  = errors.New("invalid -color, want #rrggbb")
	ErrInvalidKey    = errors.New("invalid key file")
)

// settings is the merged configuration of one command. Each field can come
// from a flag or from PIXELKEY_<env name>.
type settings struct {
	Image    string `env:"IMAGE"`
	Region   string `env:"REGION"`
	Cipher   string `env:"CIPHER"`
	SignKey  string `env:"SIGN_KEY"`
	Signer   string `env:"SIGNER"`
	Out      string `env:"OUT"`
	Size     string `env:"SIZE"`
	Color    string `env:"COLOR"`
	LogLevel string `env:"LOG_LEVEL"`
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// loadSettings parses args into flags, then fills whatever the flags left
// empty from the environment.
func loadSettings(fs *flag.FlagSet, flags *settings, args []string, environ map[string]string) (*settings, error) {
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level written to stderr (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	fromEnv := &settings{}
	if err := env.ParseWithOptions(fromEnv, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	merged := new(settings)
	for _, s := range []*settings{flags, fromEnv} {
		if err := mergo.Merge(merged, s); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, nil
}

func (s *settings) logger(w io.Writer, command string) (*logger.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid -log-level: %w", err)
	}
	return logger.New(w, "pixelkey", level).Child(command), nil
}

func (s *settings) validateEncrypt() error {
	if s.Image == "" {
		return ErrMissingImage
	}
	if s.Region == "" {
		return ErrMissingRegion
	}
	return nil
}

func (s *settings) validateDecrypt() error {
	if s.Image == "" {
		return ErrMissingImage
	}
	return nil
}

func (s *settings) validateOut() error {
	if s.Out == "" {
		return ErrMissingOut
	}
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, ErrInvalidSize
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, ErrInvalidSize
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, ErrInvalidSize
	}
	return w, h, nil
}

