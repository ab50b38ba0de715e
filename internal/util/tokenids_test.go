package util

import (
	"errors"
	"slices"
	"testing"
)

func TestDecodeTokenIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		encoded  string
		expected []int64
	}{
		{name: "single id", encoded: "5", expected: []int64{5}},
		{name: "several ids keep order", encoded: "5-9999-7", expected: []int64{5, 9999, 7}},
		{name: "duplicates kept", encoded: "3-3", expected: []int64{3, 3}},
		{name: "leading zeros", encoded: "007", expected: []int64{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeTokenIDs(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeTokenIDs(%q) unexpected error: %v", tt.encoded, err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Fatalf("DecodeTokenIDs(%q) = %v, want %v", tt.encoded, got, tt.expected)
			}
		})
	}
}

func TestDecodeTokenIDs_Malformed(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{"", "-", "5-", "-5", "5--7", "abc", "5-x-7", "+5", "1.5", "99999999999999999999"} {
		t.Run(encoded, func(t *testing.T) {
			t.Parallel()

			if _, err := DecodeTokenIDs(encoded); !errors.Is(err, ErrMalformedTokenIDs) {
				t.Fatalf("DecodeTokenIDs(%q) error = %v, want ErrMalformedTokenIDs", encoded, err)
			}
		})
	}
}

func TestEncodeTokenIDs_RoundTrip(t *testing.T) {
	t.Parallel()

	ids := []int64{1, 42, 0, 1 << 40}
	encoded := EncodeTokenIDs(ids)
	if encoded != "1-42-0-1099511627776" {
		t.Fatalf("EncodeTokenIDs(%v) = %s", ids, encoded)
	}

	decoded, err := DecodeTokenIDs(encoded)
	if err != nil {
		t.Fatalf("DecodeTokenIDs(%q) unexpected error: %v", encoded, err)
	}
	if !slices.Equal(decoded, ids) {
		t.Fatalf("round trip = %v, want %v", decoded, ids)
	}
}
