package pixelkey

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pixelkey/pixelkey-go/internal/crypto"
)

// validPacket returns a structurally valid, unsigned AES-256-GCM packet.
func validPacket() *Packet {
	return EncodePacket(make([]byte, 20), make([]byte, crypto.AESNonceSize), testRegion, CipherAES256GCM)
}

func TestEncodePacket(t *testing.T) {
	sealed := []byte{1, 2, 3, 4}
	nonce := make([]byte, crypto.AESNonceSize)

	p := EncodePacket(sealed, nonce, NewRegion(1, 2, 3, 4), CipherAES256GCM)

	if p.Ciphertext != crypto.ToBase64URL(sealed) {
		t.Errorf("Ciphertext = %q", p.Ciphertext)
	}
	if p.Nonce != crypto.ToBase64URL(nonce) {
		t.Errorf("Nonce = %q", p.Nonce)
	}
	if got := p.RegionCoords; len(got) != 4 || got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Errorf("RegionCoords = %v, want [1 2 3 4]", got)
	}
	if p.Version != PacketVersion {
		t.Errorf("Version = %d, want %d", p.Version, PacketVersion)
	}
	if p.Cipher != "AES-256-GCM" {
		t.Errorf("Cipher = %q", p.Cipher)
	}
}

func TestPacket_JSONFieldNames(t *testing.T) {
	data, err := validPacket().Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"ciphertext_b64", "hidden_nonce_b64", "region_coords", "version", "cipher"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("JSON is missing field %q: %s", name, data)
		}
	}
	for _, name := range []string{"signature_b64", "signer_pk_b64"} {
		if _, ok := fields[name]; ok {
			t.Errorf("unsigned packet has field %q", name)
		}
	}
	if string(fields["region_coords"]) != "[5,5,10,10]" {
		t.Errorf("region_coords = %s, want [5,5,10,10]", fields["region_coords"])
	}
}

func TestPacket_DecodeMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Packet)
		want   error
		field  string
	}{
		{"no ciphertext", func(p *Packet) { p.Ciphertext = "" }, ErrMissingCiphertext, "ciphertext_b64"},
		{"no nonce", func(p *Packet) { p.Nonce = "" }, ErrMissingNonce, "hidden_nonce_b64"},
		{"no region", func(p *Packet) { p.RegionCoords = nil }, ErrMissingRegionCoords, "region_coords"},
		{"nothing", func(p *Packet) { *p = Packet{} }, ErrMissingCiphertext, "ciphertext_b64"},
		{"no nonce or region", func(p *Packet) { p.Nonce = ""; p.RegionCoords = nil }, ErrMissingNonce, "hidden_nonce_b64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPacket()
			tt.mutate(p)

			decoded, err := p.Decode()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if decoded != nil {
				t.Error("expected no decoded packet")
			}

			var packetErr *PacketError
			if !errors.As(err, &packetErr) {
				t.Fatalf("expected *PacketError, got %T", err)
			}
			if packetErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", packetErr.Field, tt.field)
			}
			if errors.Is(err, ErrMalformedField) {
				t.Error("missing field also matched ErrMalformedField")
			}
		})
	}
}

func TestPacket_DecodeNil(t *testing.T) {
	var p *Packet
	if _, err := p.Decode(); !errors.Is(err, ErrMissingCiphertext) {
		t.Errorf("expected ErrMissingCiphertext, got %v", err)
	}
}

func TestPacket_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Packet)
		field  string
	}{
		{"region too short", func(p *Packet) { p.RegionCoords = []int{1, 2, 3} }, "region_coords"},
		{"region empty", func(p *Packet) { p.RegionCoords = []int{} }, "region_coords"},
		{"region too long", func(p *Packet) { p.RegionCoords = []int{1, 2, 3, 4, 5} }, "region_coords"},
		{"region negative", func(p *Packet) { p.RegionCoords = []int{0, -1, 3, 4} }, "region_coords"},
		{"region over 32 bits", func(p *Packet) { p.RegionCoords = []int{0, 0, math.MaxInt, 4} }, "region_coords"},
		{"ciphertext not base64", func(p *Packet) { p.Ciphertext = "!!!" }, "ciphertext_b64"},
		{"nonce not base64", func(p *Packet) { p.Nonce = "some_hidden_nonce" }, "hidden_nonce_b64"},
		{"ciphertext standard alphabet", func(p *Packet) { p.Ciphertext = "ab+/" }, "ciphertext_b64"},
		{"ciphertext non-zero trailing bits", func(p *Packet) { p.Ciphertext = "AQIDBB" }, "ciphertext_b64"},
		{"nonce wrong size", func(p *Packet) { p.Nonce = crypto.ToBase64URL(make([]byte, 8)) }, "hidden_nonce_b64"},
		{"unknown cipher", func(p *Packet) { p.Cipher = "ROT13" }, "cipher"},
		{"signature without key", func(p *Packet) { p.Signature = "AAAA" }, "signature_b64"},
		{"key without signature", func(p *Packet) { p.SignerPublicKey = "AAAA" }, "signature_b64"},
		{"signature wrong size", func(p *Packet) {
			p.Signature = "AAAA"
			p.SignerPublicKey = crypto.ToBase64URL(make([]byte, crypto.MLDSAPublicKeySize))
		}, "signature_b64"},
		{"signer key wrong size", func(p *Packet) {
			p.Signature = crypto.ToBase64URL(make([]byte, crypto.MLDSASignatureSize))
			p.SignerPublicKey = "AAAA"
		}, "signer_pk_b64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPacket()
			tt.mutate(p)

			_, err := p.Decode()
			if !errors.Is(err, ErrMalformedField) {
				t.Fatalf("expected ErrMalformedField, got %v", err)
			}
			var packetErr *PacketError
			if !errors.As(err, &packetErr) {
				t.Fatalf("expected *PacketError, got %T", err)
			}
			if packetErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", packetErr.Field, tt.field)
			}
		})
	}
}

func TestPacket_DecodeVersion(t *testing.T) {
	t.Run("absent means current", func(t *testing.T) {
		p := validPacket()
		p.Version = 0
		d, err := p.Decode()
		if err != nil {
			t.Fatal(err)
		}
		if d.Version != PacketVersion {
			t.Errorf("Version = %d, want %d", d.Version, PacketVersion)
		}
	})

	t.Run("future version", func(t *testing.T) {
		p := validPacket()
		p.Version = 2
		_, err := p.Decode()
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("expected ErrUnsupportedVersion, got %v", err)
		}
		if !errors.Is(err, ErrMalformedField) {
			t.Error("ErrUnsupportedVersion should also match ErrMalformedField")
		}
	})
}

func TestPacket_DecodeDefaults(t *testing.T) {
	p := validPacket()
	p.Cipher = ""

	d, err := p.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Cipher != CipherAES256GCM {
		t.Errorf("Cipher = %q, want %q", d.Cipher, CipherAES256GCM)
	}
	if d.Region != testRegion {
		t.Errorf("Region = %v, want %v", d.Region, testRegion)
	}
	if len(d.Sealed) != 20 || len(d.Nonce) != crypto.AESNonceSize {
		t.Errorf("decoded sizes = %d/%d", len(d.Sealed), len(d.Nonce))
	}
}

func TestPacket_DecodeAcceptsPaddedBase64(t *testing.T) {
	p := validPacket()
	p.Ciphertext = "AQIDBA==" // padded encoding of 1,2,3,4

	d, err := p.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(d.Sealed) != "\x01\x02\x03\x04" {
		t.Errorf("Sealed = %v", d.Sealed)
	}
}

func TestParsePacket(t *testing.T) {
	valid, err := validPacket().Marshal()
	if err != nil {
		t.Fatal(err)
	}

	p, err := ParsePacket(valid)
	if err != nil {
		t.Fatalf("ParsePacket() error = %v", err)
	}
	if _, err := p.Decode(); err != nil {
		t.Errorf("Decode() error = %v", err)
	}
}

func TestParsePacket_Errors(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		want  error
		field string
	}{
		{"missing region", `{"ciphertext_b64":"some_ciphertext","hidden_nonce_b64":"some_hidden_nonce"}`, ErrMissingRegionCoords, "region_coords"},
		{"null region", `{"ciphertext_b64":"AAAA","hidden_nonce_b64":"AAAA","region_coords":null}`, ErrMissingRegionCoords, "region_coords"},
		{"missing region beats bad version", `{"ciphertext_b64":"AAAA","hidden_nonce_b64":"AAAA","version":"1"}`, ErrMissingRegionCoords, "region_coords"},
		{"missing ciphertext beats bad region", `{"hidden_nonce_b64":"AAAA","region_coords":[1.5,0,1,1]}`, ErrMissingCiphertext, "ciphertext_b64"},
		{"empty object", `{}`, ErrMissingCiphertext, "ciphertext_b64"},
		{"invalid JSON", `{"ciphertext_b64":`, ErrMalformedField, "packet"},
		{"not an object", `[1,2,3]`, ErrMalformedField, "packet"},
		{"fractional coordinate", `{"ciphertext_b64":"AAAA","hidden_nonce_b64":"AAAA","region_coords":[1.5,0,1,1]}`, ErrMalformedField, "region_coords"},
		{"string version", `{"ciphertext_b64":"AAAA","hidden_nonce_b64":"AAAA","region_coords":[0,0,1,1],"version":"1"}`, ErrMalformedField, "version"},
		{"numeric cipher", `{"ciphertext_b64":"AAAA","hidden_nonce_b64":"AAAA","region_coords":[0,0,1,1],"cipher":7}`, ErrMalformedField, "cipher"},
		{"numeric ciphertext", `{"ciphertext_b64":12,"hidden_nonce_b64":"AAAA","region_coords":[0,0,1,1]}`, ErrMalformedField, "ciphertext_b64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePacket([]byte(tt.json))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if p != nil {
				t.Error("expected no packet")
			}
			var packetErr *PacketError
			if !errors.As(err, &packetErr) {
				t.Fatalf("expected *PacketError, got %T", err)
			}
			if packetErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", packetErr.Field, tt.field)
			}
		})
	}
}

func TestPacketError_Messages(t *testing.T) {
	tests := []struct {
		err  *PacketError
		want string
	}{
		{&PacketError{Field: "region_coords", Err: ErrMissingRegionCoords}, "packet missing region_coords"},
		{&PacketError{Field: "hidden_nonce_b64", Err: ErrMalformedField, Detail: "invalid base64"}, "malformed packet field: hidden_nonce_b64: invalid base64"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	_, err := (&Packet{Ciphertext: "x", Nonce: "y"}).Decode()
	if !strings.Contains(err.Error(), "region_coords") {
		t.Errorf("error %q does not name the missing field", err)
	}
}
