package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for nonces and signing keys.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func random() io.Reader {
	if randReader == nil {
		return rand.Reader
	}
	return randReader
}

// SetRandReaderForTesting sets the random reader used by NewNonce and
// GenerateSigningKey. This is intended for testing only. Returns a function
// to restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
