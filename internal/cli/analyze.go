package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"textguardian/internal/analyzer"
	"textguardian/internal/ingest"
	"textguardian/internal/pipeline"
	"textguardian/internal/profile"
)

const stdinName = "<stdin>"

type document struct {
	Source string
	Text   string
}

func (a *App) newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file|pattern ...]",
		Short: "Analyze files, glob patterns or standard input",
		Long: `Analyze one or more documents (.txt, .md, .docx, .pdf). Patterns such as
"docs/**/*.md" are expanded. With no arguments, or "-", text is read from
standard input. Each document gets its own report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(args)
		},
	}
	cmd.Flags().StringVarP(&a.flags.Output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&a.flags.FailOnIssues, "fail-on-issues", false, "exit with status 2 when any issue is found (repeated words alone do not count)")
	cmd.Flags().BoolVar(&a.flags.WholeWords, "whole-words", false, "match multi-word expressions at word boundaries too (\"ya que\" no longer matches \"playa que\")")
	return cmd
}

func (a *App) runAnalyze(args []string) error {
	format, err := a.format()
	if err != nil {
		return err
	}
	p := a.resolveProfile()
	docs, err := a.collectInputs(args)
	if err != nil {
		return err
	}

	an := a.newAnalyzer(p)
	results := make([]result, len(docs))
	pipeline.Run(docs, 0, func(i int, d document) error {
		results[i] = newResult(d.Source, an.Analyze(d.Text))
		return nil
	})

	if a.flags.Output != "" {
		f, err := os.Create(a.flags.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		err = renderAndClose(f, format, p, results)
		if err != nil {
			return err
		}
	} else if err := render(a.out, format, p, results); err != nil {
		return err
	}

	if a.flags.FailOnIssues {
		for _, r := range results {
			if r.TotalIssues > 0 {
				return ErrIssuesFound
			}
		}
	}
	return nil
}

// renderAndClose closes wc even when rendering fails. A failed close is
// reported.
func renderAndClose(wc io.WriteCloser, format string, p profile.Profile, results []result) error {
	if err := render(wc, format, p, results); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func (a *App) newAnalyzer(p profile.Profile) *analyzer.Analyzer {
	opts := []analyzer.Option{
		analyzer.WithWorkers(a.v.GetInt("workers")),
		analyzer.WithLogger(a.log),
	}
	if a.flags.WholeWords {
		opts = append(opts, analyzer.WithExpressionMatcher(analyzer.WholeWordMatcher{}))
	}
	return analyzer.New(p, opts...)
}

func (a *App) collectInputs(args []string) ([]document, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		text, err := ingest.ReadText(a.in)
		if err != nil {
			return nil, err
		}
		return []document{{Source: stdinName, Text: text}}, nil
	}

	paths, err := ingest.ExpandPaths(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported files match %v", args)
	}

	docs := make([]document, len(paths))
	errs := pipeline.Run(paths, 0, func(i int, path string) error {
		d, err := a.readDocument(path)
		if err != nil {
			return err
		}
		docs[i] = d
		return nil
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return docs, nil
}

func (a *App) readDocument(path string) (document, error) {
	parsed, err := ingest.ParseFile(path)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", path, err)
	}
	if parsed.Encoding != "utf-8" {
		a.log.Info("decoded legacy encoding", "file", path, "encoding", parsed.Encoding)
	}
	return document{Source: path, Text: parsed.Text}, nil
}
