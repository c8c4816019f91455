package analyzer

import (
	"strings"
	"unicode/utf8"
)

// ExpressionMatcher decides whether a forbidden expression occurs in text.
// Both arguments are already lowercase.
type ExpressionMatcher interface {
	Contains(text, expression string) bool
}

// PhraseSubstringMatcher is the default policy. Expressions containing a
// space are found by plain substring search, so "ya que" also matches
// inside "playa que". Single words must stand alone: "pero" does not match
// "perorata".
type PhraseSubstringMatcher struct{}

func (PhraseSubstringMatcher) Contains(text, expression string) bool {
	if strings.Contains(expression, " ") {
		return strings.Contains(text, expression)
	}
	return containsWord(text, expression)
}

// WholeWordMatcher anchors every expression, phrases included, at word
// boundaries.
type WholeWordMatcher struct{}

func (WholeWordMatcher) Contains(text, expression string) bool {
	return containsWord(text, expression)
}

// containsWord reports whether word occurs in text without being glued to
// an adjacent word character. Edges of word that are themselves
// punctuation (the dot in "etc.") impose no boundary.
func containsWord(text, word string) bool {
	if word == "" || len(word) > len(text) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)

	for from := 0; from <= len(text)-len(word); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		if boundaryBefore(text, start, first) && boundaryAfter(text, end, last) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return false
}

func boundaryBefore(text string, start int, first rune) bool {
	if start == 0 || !isWordRune(first) {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, last rune) bool {
	if end >= len(text) || !isWordRune(last) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}
