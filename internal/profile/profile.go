// Package profile holds the per-language data that parameterizes every
// detector: forbidden expressions, adjective lemmas, suffix rules with their
// exclusion lexicons, the connective used by the comma rule and the function
// words to count.
//
// Profiles are data. Adding a language means adding a YAML record, either
// embedded under profiles/ or loaded at runtime with LoadFile.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is the code a profile is registered under ("es", "en", ...).
type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	// Primary is what every unknown selector resolves to.
	Primary = Spanish
	// Secondary is the second built-in profile.
	Secondary = English
)

var ErrInvalidProfile = errors.New("invalid profile")

// SuffixRule flags a token that ends in one of Suffixes, is longer than
// LongerThan code points (0 disables the check) and is not listed in
// Exclusions.
type SuffixRule struct {
	Suffixes   []string `yaml:"suffixes" json:"suffixes"`
	LongerThan int      `yaml:"longer_than,omitempty" json:"longer_than,omitempty"`
	Exclusions []string `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`
}

// Profile is treated as read-only once registered. Callers that need to
// modify one should work on Clone().
type Profile struct {
	Language              Language   `yaml:"language" json:"language"`
	Name                  string     `yaml:"name" json:"name"`
	Aliases               []string   `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Connective            string     `yaml:"connective" json:"connective"`
	ForbiddenExpressions  []string   `yaml:"forbidden_expressions" json:"forbidden_expressions"`
	ProblematicAdjectives []string   `yaml:"problematic_adjectives" json:"problematic_adjectives"`
	Participle            SuffixRule `yaml:"participle" json:"participle"`
	Gerund                SuffixRule `yaml:"gerund" json:"gerund"`
	FunctionWords         []string   `yaml:"function_words" json:"function_words"`
}

// Tag is the BCP 47 tag used for case mapping. Codes that do not parse
// map to language.Und.
func (p Profile) Tag() language.Tag {
	tag, err := language.Parse(string(p.Language))
	if err != nil {
		return language.Und
	}
	return tag
}

// Validate checks the fields every detector relies on.
func (p Profile) Validate() error {
	var problems []string
	if strings.TrimSpace(string(p.Language)) == "" {
		problems = append(problems, "language is empty")
	}
	if strings.TrimSpace(p.Connective) == "" {
		problems = append(problems, "connective is empty")
	}
	if len(p.FunctionWords) == 0 {
		problems = append(problems, "function_words is empty")
	}
	if len(p.Participle.Suffixes) == 0 {
		problems = append(problems, "participle.suffixes is empty")
	}
	if len(p.Gerund.Suffixes) == 0 {
		problems = append(problems, "gerund.suffixes is empty")
	}
	for _, expr := range p.ForbiddenExpressions {
		if strings.TrimSpace(expr) == "" {
			problems = append(problems, "forbidden_expressions contains an empty entry")
			break
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidProfile, p.Language, strings.Join(problems, "; "))
	}
	return nil
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	out := p
	out.Aliases = cloneStrings(p.Aliases)
	out.ForbiddenExpressions = cloneStrings(p.ForbiddenExpressions)
	out.ProblematicAdjectives = cloneStrings(p.ProblematicAdjectives)
	out.FunctionWords = cloneStrings(p.FunctionWords)
	out.Participle = p.Participle.clone()
	out.Gerund = p.Gerund.clone()
	return out
}

func (r SuffixRule) clone() SuffixRule {
	return SuffixRule{
		Suffixes:   cloneStrings(r.Suffixes),
		LongerThan: r.LongerThan,
		Exclusions: cloneStrings(r.Exclusions),
	}
}

// Normalize returns a copy of p with the code, the connective and every word
// list trimmed and lowercased, so detectors can compare against lowercase
// tokens directly. Registered profiles are already normalized.
func Normalize(p Profile) Profile {
	out := p.Clone()
	out.Language = Language(strings.ToLower(strings.TrimSpace(string(p.Language))))
	out.Connective = strings.ToLower(strings.TrimSpace(p.Connective))
	lowerAll(out.Aliases)
	lowerAll(out.ForbiddenExpressions)
	lowerAll(out.ProblematicAdjectives)
	lowerAll(out.FunctionWords)
	lowerAll(out.Participle.Suffixes)
	lowerAll(out.Participle.Exclusions)
	lowerAll(out.Gerund.Suffixes)
	lowerAll(out.Gerund.Exclusions)
	return out
}

func lowerAll(values []string) {
	for i, v := range values {
		values[i] = strings.ToLower(strings.TrimSpace(v))
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
