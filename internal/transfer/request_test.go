package transfer

import (
	"path/filepath"
	"testing"
)

func TestNewRequestDefaultsACR(t *testing.T) {
	req := NewRequest(1, "B000", "/lib/a/Book.azw3", Metadata{}, FormatAZW3, "")
	if req.ACR != "_" {
		t.Fatalf("ACR = %q, want placeholder", req.ACR)
	}
	if got := NewRequest(1, "B000", "p", Metadata{}, FormatAZW3, "CR!X").ACR; got != "CR!X" {
		t.Fatalf("ACR = %q, want CR!X", got)
	}
}

func TestRequestCompanionPaths(t *testing.T) {
	req := NewRequest(1, "B01X", filepath.Join("lib", "author", "Book.azw3"), Metadata{}, FormatAZW3, "")
	if got, want := req.LookupPath(), filepath.Join("lib", "author", "WordWise.en.B01X.db"); got != want {
		t.Fatalf("LookupPath = %q, want %q", got, want)
	}
	if got, want := req.XRayPath(), filepath.Join("lib", "author", "XRAY.B01X.db"); got != want {
		t.Fatalf("XRayPath = %q, want %q", got, want)
	}
}

func TestRequestSafeACR(t *testing.T) {
	cases := map[string]string{
		"!abc":   "_abc",
		"CR!A!B": "CR_A_B",
		"plain":  "plain",
		"_":      "_",
	}
	for acr, want := range cases {
		req := NewRequest(1, "B01X", "p", Metadata{}, FormatKFX, acr)
		if got := req.SafeACR(); got != want {
			t.Fatalf("SafeACR(%q) = %q, want %q", acr, got, want)
		}
	}
}
