package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Defang rewrites text so URLs and domains in it are no longer clickable or
// auto-linkable. Input is normalized to NFKC first, which collapses homograph
// and fullwidth obfuscation before the substring replacements run. Never fails.
func Defang(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)

	// Single pass, not recursive: already-defanged text stays defanged.
	text = strings.ReplaceAll(text, "http:", "hxxp:")
	text = strings.ReplaceAll(text, "https:", "hxxps:")

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range runes {
		if r == '.' && i > 0 && i+1 < len(runes) && isWordRune(runes[i-1]) && isWordRune(runes[i+1]) {
			b.WriteString("[.]")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripNonPrintable removes every rune that is not printable, which covers
// control characters, ANSI escape introducers, newlines, and tabs.
func StripNonPrintable(text string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, text)
}

// isWordRune reports whether r can be part of a domain label. Covers ASCII
// and Cyrillic letters; a dot flanked by anything else is sentence
// punctuation and left alone.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9', r == '_', r == '-':
		return true
	case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я', r == 'ё', r == 'Ё':
		return true
	}
	return false
}
