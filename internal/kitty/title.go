package kitty

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title turns a file stem into a display name. Underscores and hyphens
// become spaces. Multi-word names get each whitespace-separated word
// capitalized and are rejoined with single spaces; a single word is
// title-cased so that every letter following a non-letter starts a word.
//
//	dark_blue-theme -> Dark Blue Theme
//	solarized       -> Solarized
//	base16-3024     -> Base16 3024
func Title(stem string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	if strings.Contains(s, " ") {
		return capWords(s)
	}
	return titleWord(s)
}

func capWords(s string) string {
	// Casers carry state; keep them local to the call.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Fields(s)
	for i, w := range words {
		_, n := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:n]) + lower.String(w[n:])
	}
	return strings.Join(words, " ")
}

func titleWord(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
