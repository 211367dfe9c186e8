package tokens

import (
	"encoding/base64"
	"testing"
	"time"
)

// Tests for token structure validation

func TestSplitToken(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid 3 segments", "a.b.c", false},
		{"2 segments", "a.b", true},
		{"4 segments", "a.b.c.d", true},
		{"1 segment", "abc", true},
		{"empty", "", true},
		{"just dots", "..", false}, // 3 segments, all empty
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := splitToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitToken_ReturnsSegments(t *testing.T) {
	t.Parallel()
	header, claims, signature, err := splitToken("header.claims.signature")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header != "header" {
		t.Errorf("header = %q, want %q", header, "header")
	}
	if claims != "claims" {
		t.Errorf("claims = %q, want %q", claims, "claims")
	}
	if signature != "signature" {
		t.Errorf("signature = %q, want %q", signature, "signature")
	}
}

// Tests for segment encoding/decoding

func TestEncodeDecodeSegment_RoundTrip(t *testing.T) {
	t.Parallel()
	type testStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := testStruct{Name: "test", Value: 42}
	encoded, err := encodeSegment(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var decoded testStruct
	if err := decodeSegment(encoded, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != original {
		t.Errorf("got %+v, want %+v", decoded, original)
	}
}

func TestDecodeSegment_InvalidBase64(t *testing.T) {
	t.Parallel()
	var result struct{}
	if err := decodeSegment("not-valid-base64!!!", &result); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDecodeSegment_InvalidJSON(t *testing.T) {
	t.Parallel()
	encoded := base64.RawURLEncoding.EncodeToString([]byte("not-json"))
	var result struct{}
	if err := decodeSegment(encoded, &result); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

// Tests for expiry evaluation

func TestExpired(t *testing.T) {
	t.Parallel()
	now := time.Unix(1_000_000, 0)

	tests := []struct {
		name string
		exp  int64
		want bool
	}{
		{"past", 999_000, true},
		{"one second ago", 999_999, true},
		{"exactly now", 1_000_000, false},
		{"one second ahead", 1_000_001, false},
		{"far future", 2_000_000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expired(tt.exp, now); got != tt.want {
				t.Errorf("expired(%d) = %v, want %v", tt.exp, got, tt.want)
			}
		})
	}
}

// Tests for claim literals

func TestClaimLiterals(t *testing.T) {
	t.Parallel()
	// deployed verifiers depend on these exact strings
	if sessionIssuer != "warrant" {
		t.Errorf("sessionIssuer = %q", sessionIssuer)
	}
	if sessionAudience != "warrant-web" {
		t.Errorf("sessionAudience = %q", sessionAudience)
	}
	if legacyIssuer != "warrant-auth" {
		t.Errorf("legacyIssuer = %q", legacyIssuer)
	}
	if providerIssuerURL != "https://"+providerIssuerHost {
		t.Errorf("issuer forms diverge: %q vs %q", providerIssuerHost, providerIssuerURL)
	}
}
