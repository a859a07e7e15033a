package utils

import (
	"strings"
	"unicode"
)

// ReadableSpecialty converts a camelCase specialty code from the dataset to
// display text, e.g. "gynecologyAndObstetrics" -> "Gynecology & Obstetrics".
func ReadableSpecialty(code string) string {
	var b strings.Builder
	for i, r := range code {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	s := b.String()
	s = strings.ReplaceAll(s, " And ", " & ")
	s = strings.ReplaceAll(s, " Or ", "/")
	return TitleCase(s)
}

// ReadableSpecialties maps ReadableSpecialty over a list of codes.
func ReadableSpecialties(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = ReadableSpecialty(c)
	}
	return out
}

// TitleCase upper-cases the first letter of every word, leaving the rest of
// each word untouched.
func TitleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// FoundSignals returns the signals that occur as substrings of text,
// preserving signal order. Text is expected to be lowercased already.
func FoundSignals(text string, signals []string) []string {
	var found []string
	for _, s := range signals {
		if strings.Contains(text, s) {
			found = append(found, s)
		}
	}
	return found
}

// ContainsAny reports whether any of the signals occurs in text.
func ContainsAny(text string, signals ...string) bool {
	for _, s := range signals {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Truncate cuts s to at most n bytes. Prompt fields are plain ASCII-heavy
// prose, so a byte cut is acceptable here.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// SnakeCase lowercases s and replaces spaces with underscores, used for
// stable report identifiers.
func SnakeCase(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
