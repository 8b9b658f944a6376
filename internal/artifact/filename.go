package artifact

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ext is the artifact file extension produced by the Lighthouse CLI with
// --output=html. The directory scanner selects files by this extension.
const Ext = ".html"

const (
	// maxSanitizedLen bounds the sanitized URL portion of a filename.
	// The prefix and the random suffix are never truncated, so the full
	// name stays comfortably below common filesystem limits.
	maxSanitizedLen = 80

	// suffixLen is the length of the random collision suffix. Six
	// characters over a 36-symbol alphabet make a collision within one
	// run directory practically impossible even for identical URLs.
	suffixLen = 6

	// suffixAlphabet is the symbol set for the random suffix.
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Filename converts a URL into a safe artifact file name:
//
//	<prefix>_<sanitized-url>__<random6>.html
//
// The sanitized body keeps [a-zA-Z0-9-], transliterates accented characters
// via NFKD, collapses every other character run into a single underscore,
// and is truncated at maxSanitizedLen. The random suffix guarantees that
// two sanitizations never collide inside one run directory, even for the
// same URL audited twice. Any input, including empty or very long strings,
// produces a valid file name.
func Filename(url, prefix string) string {
	return filenameWithSuffix(url, prefix, randomSuffix())
}

// filenameWithSuffix is the deterministic core of Filename: same URL,
// prefix, and suffix always yield the same name.
func filenameWithSuffix(url, prefix, suffix string) string {
	sanitized := sanitizeURL(url)
	if len(sanitized) > maxSanitizedLen {
		sanitized = sanitized[:maxSanitizedLen]
	}
	return prefix + "_" + sanitized + "__" + suffix + Ext
}

// sanitizeURL reduces a URL to the filesystem-safe alphabet.
func sanitizeURL(url string) string {
	s := strings.TrimPrefix(url, "https://")
	s = strings.TrimPrefix(s, "http://")

	// NFKD splits accented letters into base letter plus combining mark,
	// so "café" sanitizes to "cafe" instead of losing the letter entirely.
	s = norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	lastUnsafe := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnsafe = false
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from NFKD; drop it without
			// emitting a separator.
		default:
			if !lastUnsafe {
				b.WriteByte('_')
			}
			lastUnsafe = true
		}
	}
	return b.String()
}

// randomSuffix returns suffixLen random characters from suffixAlphabet.
func randomSuffix() string {
	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
