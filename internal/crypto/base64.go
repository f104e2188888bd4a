package crypto

import (
	"encoding/base64"
)

// packetEncodings are tried in order by DecodeBase64. Packets are written
// with the first; the second accepts text that a tool padded. Both are
// strict and share one alphabet, so no single-bit change to a character
// yields another accepted text for the same bytes.
var packetEncodings = []*base64.Encoding{
	base64.RawURLEncoding.Strict(),
	base64.URLEncoding.Strict(),
}

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// DecodeBase64 decodes URL-safe base64 with or without padding. Non-zero
// trailing bits and the standard alphabet's '+' and '/' are rejected.
// The error is that of the last encoding tried.
func DecodeBase64(s string) ([]byte, error) {
	var err error
	for _, enc := range packetEncodings {
		var data []byte
		if data, err = enc.DecodeString(s); err == nil {
			return data, nil
		}
	}
	return nil, err
}
