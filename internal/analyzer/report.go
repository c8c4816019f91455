package analyzer

import (
	"sort"

	"textguardian/internal/profile"
)

// Report is the result of one analysis. Set-valued fields are sorted and
// deduplicated; ForbiddenExpressions keeps profile order and
// CommaBeforeConnective keeps text order.
type Report struct {
	Language              profile.Language `json:"language"`
	WordCount             int              `json:"word_count"`
	SentenceCount         int              `json:"sentence_count"`
	RepeatedWords         map[string]int   `json:"repeated_words"`
	Participles           []string         `json:"participles"`
	Gerunds               []string         `json:"gerunds"`
	ForbiddenExpressions  []string         `json:"forbidden_expressions"`
	ProblematicAdjectives []string         `json:"problematic_adjectives"`
	CommaBeforeConnective []string         `json:"comma_before_connective"`
	SpecificWordCounts    map[string]int   `json:"specific_word_counts"`
}

// TotalIssues counts flagged participles, gerunds, forbidden expressions,
// problematic adjectives and misplaced commas. Repeated words are reported
// separately and do not count.
func (r Report) TotalIssues() int {
	return len(r.Participles) +
		len(r.Gerunds) +
		len(r.ForbiddenExpressions) +
		len(r.ProblematicAdjectives) +
		len(r.CommaBeforeConnective)
}

// Clean reports whether nothing was flagged, repeated words included.
func (r Report) Clean() bool {
	return r.TotalIssues() == 0 && len(r.RepeatedWords) == 0
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// RepeatedByFrequency orders RepeatedWords by count descending, then word.
func (r Report) RepeatedByFrequency() []WordCount {
	out := make([]WordCount, 0, len(r.RepeatedWords))
	for w, c := range r.RepeatedWords {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}
