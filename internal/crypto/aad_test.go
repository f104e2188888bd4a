package crypto

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestBuildAAD_Layout(t *testing.T) {
	aad, err := BuildAAD(1, SuiteAES256GCM, 5, 5, 10, 10)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte("pixelkey:v")
	want = append(want, 1)
	want = append(want, "AES-256-GCM"...)
	want = append(want, 0)
	want = append(want, 0, 0, 0, 5, 0, 0, 0, 5, 0, 0, 0, 10, 0, 0, 0, 10)

	if !bytes.Equal(aad, want) {
		t.Errorf("BuildAAD() = %x, want %x", aad, want)
	}
}

func TestBuildAAD_Distinct(t *testing.T) {
	base, _ := BuildAAD(1, SuiteAES256GCM, 1, 2, 3, 4)

	variants := []struct {
		name    string
		version int
		suite   Suite
		coords  [4]int
	}{
		{"version", 2, SuiteAES256GCM, [4]int{1, 2, 3, 4}},
		{"suite", 1, SuiteXChaCha20Poly1305, [4]int{1, 2, 3, 4}},
		{"x", 1, SuiteAES256GCM, [4]int{2, 2, 3, 4}},
		{"y", 1, SuiteAES256GCM, [4]int{1, 3, 3, 4}},
		{"swapped size", 1, SuiteAES256GCM, [4]int{1, 2, 4, 3}},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			aad, err := BuildAAD(v.version, v.suite, v.coords[0], v.coords[1], v.coords[2], v.coords[3])
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(aad, base) {
				t.Error("different inputs produced identical AAD")
			}
		})
	}
}

func TestBuildAAD_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		coords [4]int
	}{
		{"negative", [4]int{-1, 0, 1, 1}},
		{"too large", [4]int{0, 0, math.MaxUint32 + 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAAD(1, SuiteAES256GCM, tt.coords[0], tt.coords[1], tt.coords[2], tt.coords[3])
			if !errors.Is(err, ErrRegionTooLarge) {
				t.Errorf("expected ErrRegionTooLarge, got %v", err)
			}
		})
	}
}

func TestBuildTranscript(t *testing.T) {
	got := BuildTranscript([]byte("a"), []byte("bb"), []byte("ccc"))
	if string(got) != "abbccc" {
		t.Errorf("BuildTranscript() = %q, want %q", got, "abbccc")
	}
}
