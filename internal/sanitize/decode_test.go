package sanitize

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeCommentEmpty(t *testing.T) {
	if got := DecodeComment(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestDecodeCommentPlainText(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hello there"))
	if got := DecodeComment(encoded); got != "hello there" {
		t.Fatalf("unexpected decode: %q", got)
	}
}

func TestDecodeCommentUnpadded(t *testing.T) {
	encoded := base64.RawStdEncoding.EncodeToString([]byte("hi"))
	if got := DecodeComment(encoded); got != "hi" {
		t.Fatalf("unpadded base64 should decode: %q", got)
	}
}

func TestDecodeCommentOversize(t *testing.T) {
	encoded := strings.Repeat("A", MaxEncodedComment+1)
	if got := DecodeComment(encoded); got != OversizePlaceholder {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestDecodeCommentInvalidBase64(t *testing.T) {
	if got := DecodeComment("!!not base64!!"); got != "" {
		t.Fatalf("decode failure must return empty, not %q", got)
	}
}

func TestDecodeCommentStripsControlCharacters(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("line1\nline2\x1b[2Jend"))
	got := DecodeComment(encoded)
	if strings.ContainsAny(got, "\n\x1b") {
		t.Fatalf("control characters survived: %q", got)
	}
	if !strings.Contains(got, "line1") || !strings.Contains(got, "end") {
		t.Fatalf("printable content lost: %q", got)
	}
}

func TestDecodeCommentDefangsLinks(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("claim at https://evil.com"))
	got := DecodeComment(encoded)
	if strings.Contains(got, "https://") {
		t.Fatalf("decoded comment still clickable: %q", got)
	}
	if !strings.Contains(got, "hxxps://evil[.]com") {
		t.Fatalf("decoded comment not defanged: %q", got)
	}
}

func TestDecodeCommentLossyUTF8(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 'o', 'k'})
	got := DecodeComment(encoded)
	if !strings.Contains(got, "ok") {
		t.Fatalf("valid bytes lost in lossy decode: %q", got)
	}
}
