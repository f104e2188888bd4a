// Command pixelkey encrypts and decrypts data with keys taken from image
// regions.
//
//	pixelkey encrypt -image photo.png -region 5,5,10,10 < secret.txt > packet.json
//	pixelkey decrypt -image photo.png < packet.json
//	pixelkey keygen -out signer.key
//	pixelkey fixture -out red.png -size 20x20 -color '#ff0000'
//
// Flags can also be given as PIXELKEY_* environment variables; flags win.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
)

const usage = "usage: pixelkey <encrypt|decrypt|keygen|fixture> [flags]"

// Config holds the process streams and environment a run works against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env maps environment variable names to values.
	Env map[string]string
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Env:    env.ToMap(os.Environ()),
	}
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "encrypt":
		return runEncrypt(rest, cfg)
	case "decrypt":
		return runDecrypt(rest, cfg)
	case "keygen":
		return runKeygen(rest, cfg)
	case "fixture":
		return runFixture(rest, cfg)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(cfg.Stdout, usage)
		return nil
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
