package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A word is a maximal run of letters, combining marks, digits and
// underscores, so accented vowels and ñ stay inside their word.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Tokenize lowercases text and returns its word tokens in order.
func Tokenize(text string) []string {
	return tokenize(lower(text, language.Und))
}

func tokenize(lowered string) []string {
	return wordPattern.FindAllString(lowered, -1)
}

// lower builds a fresh Caser per call because a Caser is not safe for
// concurrent use.
func lower(text string, tag language.Tag) string {
	if text == "" {
		return ""
	}
	return cases.Lower(tag).String(text)
}

// CountWords returns len(Tokenize(text)).
func CountWords(text string) int {
	return len(Tokenize(text))
}

// CountSentences splits on runs of '.', '!' and '?' and counts the
// segments that are not blank.
func CountSentences(text string) int {
	count := 0
	for _, s := range sentenceEnd.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}
