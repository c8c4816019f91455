// Package offline checks that the whole analysis path runs with networking
// disabled.
package offline

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textguardian/internal/analyzer"
	"textguardian/internal/ingest"
	"textguardian/internal/profile"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	text := strings.Repeat("El estudio realizado, y los datos obtenidos muestran resultados. ", 200)
	path := filepath.Join(t.TempDir(), "ensayo.md")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	parsed, err := ingest.ParseFile(path)
	if err != nil {
		t.Fatalf("expected parsing to work offline: %v", err)
	}

	reg := profile.NewRegistry()
	p, ok := reg.Lookup("español")
	if !ok {
		t.Fatal("expected built-in profiles to load offline")
	}

	report := analyzer.New(p, analyzer.WithWorkers(4)).Analyze(parsed.Text)
	if report.SentenceCount != 200 {
		t.Fatalf("expected 200 sentences, got %d", report.SentenceCount)
	}
	if len(report.Participles) == 0 || len(report.CommaBeforeConnective) != 200 {
		t.Fatalf("expected analysis to work offline, got %+v", report)
	}
}
