// Package chat implements the message-understanding core of the cinema
// assistant: text normalization, keyword intent classification, title
// similarity scoring, reservation line parsing and the dialogue engine
// that ties them to the data store.
package chat

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes the combining diacritical marks left behind by NFD
// decomposition so that "película" and "pelicula" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// punctuation lists the sentence marks removed before matching. The set
// covers the inverted Spanish forms alongside the usual terminators.
const punctuation = "¿?¡!.,;:"

// Normalize lower-cases text, strips accents and drops punctuation so
// keyword and similarity comparisons are accent- and case-insensitive.
// It is idempotent and never fails; if the transform chain reports an
// error the lower-cased input is used as-is.
func Normalize(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
}
