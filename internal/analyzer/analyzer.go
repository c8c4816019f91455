// Package analyzer flags weak academic style in a block of prose: repeated
// words, participles, gerunds, forbidden expressions, vague adjectives and
// commas placed before the connective. Detection is lexical and
// suffix-based; nothing here tags parts of speech.
package analyzer

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"textguardian/internal/pipeline"
	"textguardian/internal/profile"
)

// Analyzer runs every detector against one profile. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	profile profile.Profile
	tag     language.Tag
	rules   *rules
	matcher ExpressionMatcher
	workers int
	logger  *slog.Logger
}

type Option func(*Analyzer)

// WithWorkers runs the detectors on up to n goroutines. n <= 1 keeps them
// on the calling goroutine.
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithExpressionMatcher replaces the forbidden-expression policy.
func WithExpressionMatcher(m ExpressionMatcher) Option {
	return func(a *Analyzer) {
		if m != nil {
			a.matcher = m
		}
	}
}

// New compiles p. The profile is normalized into a private copy, so word
// lists may use any case and later changes by the caller do not affect the
// analyzer.
func New(p profile.Profile, opts ...Option) *Analyzer {
	p = profile.Normalize(p)
	a := &Analyzer{
		profile: p,
		tag:     p.Tag(),
		rules:   compile(p),
		matcher: PhraseSubstringMatcher{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze resolves lang against the built-in profiles, falling back to the
// primary profile for unknown values, and analyzes text.
func Analyze(text string, lang profile.Language) Report {
	return New(profile.Builtin(string(lang))).Analyze(text)
}

func (a *Analyzer) Profile() profile.Profile {
	return a.profile.Clone()
}

// input is shared read-only by every detector of one analysis.
type input struct {
	text    string
	lowered string
	tokens  []string
}

type detector func(a *Analyzer, in input, r *Report)

// Each detector writes a distinct field of the report, so they can run
// concurrently without locking.
var detectors = []detector{
	func(_ *Analyzer, in input, r *Report) { r.WordCount = len(in.tokens) },
	func(_ *Analyzer, in input, r *Report) { r.SentenceCount = CountSentences(in.text) },
	func(a *Analyzer, in input, r *Report) { r.RepeatedWords = repeatedWords(in.tokens, commonWords) },
	func(a *Analyzer, in input, r *Report) { r.Participles = matchingSet(in.tokens, a.rules.participle.match) },
	func(a *Analyzer, in input, r *Report) { r.Gerunds = matchingSet(in.tokens, a.rules.gerund.match) },
	func(a *Analyzer, in input, r *Report) {
		r.ForbiddenExpressions = forbiddenExpressions(in.lowered, a.rules.forbidden, a.matcher)
	},
	func(a *Analyzer, in input, r *Report) { r.ProblematicAdjectives = matchingSet(in.tokens, a.isAdjective) },
	func(a *Analyzer, in input, r *Report) {
		r.CommaBeforeConnective = commaBeforeConnective(in.text, a.rules.commaBefore)
	},
	func(a *Analyzer, in input, r *Report) { r.SpecificWordCounts = specificWordCounts(in.tokens, a.rules.functions) },
}

// Analyze runs every detector on text and assembles the report. Calling it
// twice with the same text yields equal reports.
func (a *Analyzer) Analyze(text string) Report {
	started := time.Now()
	in := a.prepare(text)
	report := Report{Language: a.profile.Language}

	run := func(_ int, d detector) error {
		d(a, in, &report)
		return nil
	}
	if a.workers > 1 {
		pipeline.Run(detectors, a.workers, run)
	} else {
		pipeline.Sequential(detectors, run)
	}

	a.logger.Debug("analysis complete",
		"language", a.profile.Language,
		"words", report.WordCount,
		"issues", report.TotalIssues(),
		"duration", time.Since(started),
	)
	return report
}

func (a *Analyzer) prepare(text string) input {
	lowered := lower(text, a.tag)
	return input{text: text, lowered: lowered, tokens: tokenize(lowered)}
}

func (a *Analyzer) isAdjective(tok string) bool {
	_, ok := a.rules.adjectives[tok]
	return ok
}

// The methods below expose single detectors for callers that need one
// result without the full report.

func (a *Analyzer) RepeatedWords(text string) map[string]int {
	return repeatedWords(a.prepare(text).tokens, commonWords)
}

func (a *Analyzer) Participles(text string) []string {
	return matchingSet(a.prepare(text).tokens, a.rules.participle.match)
}

func (a *Analyzer) Gerunds(text string) []string {
	return matchingSet(a.prepare(text).tokens, a.rules.gerund.match)
}

func (a *Analyzer) ForbiddenExpressions(text string) []string {
	return forbiddenExpressions(a.prepare(text).lowered, a.rules.forbidden, a.matcher)
}

func (a *Analyzer) ProblematicAdjectives(text string) []string {
	return matchingSet(a.prepare(text).tokens, a.isAdjective)
}

func (a *Analyzer) CommaBeforeConnective(text string) []string {
	return commaBeforeConnective(text, a.rules.commaBefore)
}

func (a *Analyzer) SpecificWordCounts(text string) map[string]int {
	return specificWordCounts(a.prepare(text).tokens, a.rules.functions)
}
