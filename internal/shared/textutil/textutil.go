// Package textutil folds human names into the ASCII forms used for logins
// and display.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures have no decomposition, so NFD leaves them intact.
var ligatures = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'Æ': "AE",
	'œ': "oe",
	'Œ': "OE",
	'ø': "o",
	'Ø': "O",
	'đ': "d",
	'Đ': "D",
	'ł': "l",
	'Ł': "L",
	'þ': "th",
	'Þ': "TH",
	'ð': "d",
	'Ð': "D",
	'ı': "i",
}

// ASCIIFold strips diacritics, expands ligatures and drops any rune that
// still is not ASCII. Punctuation and spaces are kept.
func ASCIIFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if rep, ok := ligatures[r]; ok {
			b.WriteString(rep)
		}
	}
	return b.String()
}

// NormalizeLogin is the lowercase fold used as the username stem.
func NormalizeLogin(lastName string) string {
	return strings.ToLower(ASCIIFold(lastName))
}

// DisplayLastName is the uppercase fold shown in listings.
func DisplayLastName(lastName string) string {
	return strings.ToUpper(ASCIIFold(lastName))
}
