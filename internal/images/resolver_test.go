package images

import (
	"context"
	"strings"
	"testing"
)

// Minimal valid PNG header bytes, enough for content sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestDataURIResolver(t *testing.T) {
	resolver := NewDataURIResolver()

	url, err := resolver.Resolve(context.Background(), "avatar.png", pngBytes)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("Expected PNG data URI, got %q", url)
	}
}

func TestDataURIResolverEmptyPayload(t *testing.T) {
	resolver := NewDataURIResolver()

	if _, err := resolver.Resolve(context.Background(), "avatar.png", nil); err == nil {
		t.Error("Expected error for empty payload")
	}
}

func TestNormalizeExt(t *testing.T) {
	if got := normalizeExt("photo.jpeg", ".png"); got != ".jpeg" {
		t.Errorf("Expected original extension to win, got %q", got)
	}
	if got := normalizeExt("photo", ".png"); got != ".png" {
		t.Errorf("Expected sniffed extension fallback, got %q", got)
	}
}
