package sanitize

import (
	"encoding/base64"
	"strings"
)

// MaxEncodedComment caps the accepted base64 input size.
const MaxEncodedComment = 4096

// OversizePlaceholder is returned for inputs over the size cap, and only for
// those: decode failures return an empty string instead.
const OversizePlaceholder = "<encoded payload too large>"

// DecodeComment decodes a base64 comment into display-safe text. It never
// fails: oversized input yields OversizePlaceholder, undecodable input yields
// an empty string, and anything decoded is stripped of non-printable runes
// and defanged before being returned.
func DecodeComment(encoded string) string {
	if encoded == "" {
		return ""
	}
	if len(encoded) > MaxEncodedComment {
		return OversizePlaceholder
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return ""
	}

	text := strings.ToValidUTF8(string(raw), "�")
	return Defang(StripNonPrintable(text))
}
