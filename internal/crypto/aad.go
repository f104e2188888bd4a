package crypto

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BuildAAD constructs the associated data bound into a sealed packet:
//
//	AADContext || version (1 byte) || suite name || 0x00 || x || y || w || h
//
// with each coordinate as a 4-byte big-endian integer.
func BuildAAD(version int, suite Suite, x, y, w, h int) ([]byte, error) {
	coords := [4]int{x, y, w, h}
	for _, c := range coords {
		if c < 0 || int64(c) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", ErrRegionTooLarge, c)
		}
	}

	aad := make([]byte, 0, len(AADContext)+1+len(suite)+1+16)
	aad = append(aad, AADContext...)
	aad = append(aad, byte(version))
	aad = append(aad, string(suite)...)
	aad = append(aad, 0)
	for _, c := range coords {
		aad = binary.BigEndian.AppendUint32(aad, uint32(c))
	}

	return aad, nil
}

// BuildTranscript is the message covered by a packet signature.
func BuildTranscript(aad, nonce, sealed []byte) []byte {
	transcript := make([]byte, 0, len(aad)+len(nonce)+len(sealed))
	transcript = append(transcript, aad...)
	transcript = append(transcript, nonce...)
	transcript = append(transcript, sealed...)
	return transcript
}
