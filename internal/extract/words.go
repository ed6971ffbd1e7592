package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// textTrim is stripped from both ends of a comment before splitting
	textTrim = "#'\""

	// wordTrim is stripped from both ends of every token
	wordTrim = "*?!:;.,'\"`"

	// badPrefix marks flag-like or escape-like fragments ("--debug", "\n")
	badPrefix = `%-+\@`

	// codeChars never appear in prose words
	codeChars = `<>{}[]():._0123456789&*\`
)

// separators are treated as word breaks rather than punctuation
var separators = strings.NewReplacer("/", " ", "-", " ", ",", " ")

// Words extracts the tokens of text that look like natural language.
// Order and duplicates are preserved.
func Words(text string) []string {
	text = strings.Trim(text, textTrim)
	text = separators.Replace(text)

	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, wordTrim)
		if IsWord(w) {
			words = append(words, w)
		}
	}
	return words
}

// IsWord reports whether a trimmed token should be spell checked
func IsWord(w string) bool {
	if w == "" {
		return false
	}

	if strings.IndexFunc(w, unicode.IsLetter) < 0 {
		return false
	}

	first, size := utf8.DecodeRuneInString(w)
	if strings.ContainsRune(badPrefix, first) {
		return false
	}

	// code leaking into comments
	if strings.ContainsAny(w, codeChars) {
		return false
	}

	// mixed case identifiers such as "StructRNA"; "Hello" is fine
	if utf8.RuneCountInString(w) > 1 && strings.IndexFunc(w, unicode.IsLower) >= 0 {
		if !isLower(w[size:]) {
			return false
		}
	}

	return true
}

// isLower reports whether s has at least one cased rune and no cased rune
// other than lowercase ones.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}
