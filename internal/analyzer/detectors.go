package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"textguardian/internal/profile"
)

// minRepeatedLen is the shortest word considered by the repeated-word
// detector; anything of this length or shorter is ignored.
const minRepeatedLen = 2

// commonWords never count as repeated words. The list is shared by every
// profile.
var commonWords = toSet([]string{
	"el", "la", "los", "las", "un", "una", "unos", "unas", "de", "del",
	"en", "con", "por", "para", "a", "al", "se", "es", "son", "y", "o",
	"que", "no", "si", "como", "cuando", "donde", "este", "esta", "estos", "estas",
})

// rules is a profile compiled into lookup sets.
type rules struct {
	adjectives  map[string]struct{}
	participle  suffixMatcher
	gerund      suffixMatcher
	forbidden   []string
	functions   []string
	commaBefore *regexp.Regexp
}

type suffixMatcher struct {
	suffixes   []string
	longerThan int
	excluded   map[string]struct{}
}

func compile(p profile.Profile) *rules {
	return &rules{
		adjectives:  toSet(p.ProblematicAdjectives),
		participle:  newSuffixMatcher(p.Participle),
		gerund:      newSuffixMatcher(p.Gerund),
		forbidden:   p.ForbiddenExpressions,
		functions:   p.FunctionWords,
		commaBefore: commaPattern(p.Connective),
	}
}

func newSuffixMatcher(r profile.SuffixRule) suffixMatcher {
	return suffixMatcher{
		suffixes:   r.Suffixes,
		longerThan: r.LongerThan,
		excluded:   toSet(r.Exclusions),
	}
}

func (m suffixMatcher) match(token string) bool {
	if m.longerThan > 0 && utf8.RuneCountInString(token) <= m.longerThan {
		return false
	}
	if _, ok := m.excluded[token]; ok {
		return false
	}
	for _, suffix := range m.suffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}

// commaPattern matches a comma, at least one whitespace character and the
// connective. The word boundary after the connective is checked separately
// because RE2's \b only knows ASCII.
func commaPattern(connective string) *regexp.Regexp {
	return regexp.MustCompile(`,[\s\v\p{Z}\x{85}]+(?i:` + regexp.QuoteMeta(connective) + `)`)
}

func repeatedWords(tokens []string, stop map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= minRepeatedLen {
			continue
		}
		if _, ok := stop[tok]; ok {
			continue
		}
		counts[tok]++
	}
	for w, c := range counts {
		if c < 2 {
			delete(counts, w)
		}
	}
	return counts
}

func matchingSet(tokens []string, keep func(string) bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup || !keep(tok) {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

func forbiddenExpressions(lowered string, expressions []string, m ExpressionMatcher) []string {
	out := make([]string, 0)
	for _, expr := range expressions {
		if m.Contains(lowered, expr) {
			out = append(out, expr)
		}
	}
	return out
}

func commaBeforeConnective(text string, pattern *regexp.Regexp) []string {
	out := make([]string, 0)
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[1] < len(text) {
			next, _ := utf8.DecodeRuneInString(text[loc[1]:])
			if isWordRune(next) {
				continue
			}
		}
		out = append(out, text[loc[0]:loc[1]])
	}
	return out
}

func specificWordCounts(tokens []string, words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w] = 0
	}
	for _, tok := range tokens {
		if _, ok := counts[tok]; ok {
			counts[tok]++
		}
	}
	return counts
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
