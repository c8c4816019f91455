package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"textguardian/internal/analyzer"
	"textguardian/internal/profile"
)

type result struct {
	Source      string          `json:"source"`
	TotalIssues int             `json:"total_issues"`
	Report      analyzer.Report `json:"report"`
}

func newResult(source string, r analyzer.Report) result {
	return result{Source: source, TotalIssues: r.TotalIssues(), Report: r}
}

// render writes one object for a single document and an array otherwise.
func render(w io.Writer, format string, p profile.Profile, results []result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := renderText(w, p, r); err != nil {
			return err
		}
	}
	return nil
}

func renderText(w io.Writer, p profile.Profile, res result) error {
	r := res.Report
	var b strings.Builder

	fmt.Fprintf(&b, "== %s (%s)\n", res.Source, r.Language)
	fmt.Fprintf(&b, "Words: %d  Sentences: %d  Repeated words: %d  Total issues: %d\n",
		r.WordCount, r.SentenceCount, len(r.RepeatedWords), res.TotalIssues)

	if r.Clean() {
		b.WriteString("No common writing problems detected.\n")
	} else {
		b.WriteString("\n")
		writeList(&b, "Participles", r.Participles)
		writeList(&b, "Gerunds", r.Gerunds)
		writeList(&b, "Forbidden expressions", r.ForbiddenExpressions)
		writeList(&b, "Problematic adjectives", r.ProblematicAdjectives)
		quoted := make([]string, len(r.CommaBeforeConnective))
		for i, m := range r.CommaBeforeConnective {
			quoted[i] = fmt.Sprintf("%q", m)
		}
		writeList(&b, fmt.Sprintf("Commas before %q", p.Connective), quoted)

		if repeated := r.RepeatedByFrequency(); len(repeated) > 0 {
			b.WriteString("Repeated words:\n")
			for _, wc := range repeated {
				fmt.Fprintf(&b, "  %s x%d\n", wc.Word, wc.Count)
			}
		}
	}

	b.WriteString("Specific word counts:\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, word := range functionWordOrder(p, r) {
		fmt.Fprintf(tw, "  %s\t%d\n", word, r.SpecificWordCounts[word])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("format counts: %w", err)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s: none\n", label)
		return
	}
	fmt.Fprintf(b, "%s (%d): %s\n", label, len(items), strings.Join(items, ", "))
}

// functionWordOrder lists the counted words in profile order, skipping
// duplicates.
func functionWordOrder(p profile.Profile, r analyzer.Report) []string {
	seen := make(map[string]struct{}, len(p.FunctionWords))
	out := make([]string, 0, len(r.SpecificWordCounts))
	for _, w := range p.FunctionWords {
		if _, ok := r.SpecificWordCounts[w]; !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
