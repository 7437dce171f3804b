package wordle

import (
	"strings"
	"unicode"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims, strips diacritics and uppercases a word so that
// "braço" and "BRACO" compare equal.
func Normalize(word string) string {
	// transform chains keep state, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(word))
	if err != nil {
		stripped = strings.TrimSpace(word)
	}
	return strings.ToUpper(stripped)
}

// Sanitize clips user input to the maximum accepted length and trims it
func Sanitize(input string) string {
	r := []rune(input)
	if len(r) > game_constants.MaxInputLength {
		r = r[:game_constants.MaxInputLength]
	}
	return strings.TrimSpace(string(r))
}
