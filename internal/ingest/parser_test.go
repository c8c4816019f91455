package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Capítulo 1</w:t></w:r></w:p><w:p><w:r><w:t>Hola mundo, y adiós.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if got != "Capítulo 1\nHola mundo, y adiós." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestParseDOCXEmptyBody(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p></w:p></w:body></w:document>`)
	if _, err := parseDOCX(raw); !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestParseFileDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ensayo.docx")
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Texto   con    espacios.</w:t></w:r></w:p></w:body></w:document>`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if parsed.Title != "ensayo" {
		t.Fatalf("expected title ensayo, got %q", parsed.Title)
	}
	if parsed.Text != "Texto con espacios." {
		t.Fatalf("unexpected text %q", parsed.Text)
	}
}

func TestParseFilePlainKeepsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	body := "Primera línea,\n y segunda.\n\nTercera."
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if parsed.Text != body {
		t.Fatalf("expected text unchanged, got %q", parsed.Text)
	}
	if parsed.Encoding != "utf-8" {
		t.Fatalf("expected utf-8, got %s", parsed.Encoding)
	}
}

func TestParseFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.odt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	_, err := ParseFile(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported file type error, got %v", err)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		text     string
		encoding string
	}{
		{"utf8", []byte("año"), "año", "utf-8"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("niño")...), "niño", "utf-8"},
		{"utf16le bom", []byte{0xFF, 0xFE, 'y', 0x00, 0xF1, 0x00}, "yñ", "utf-16"},
		{"windows-1252", []byte{'a', 0xF1, 'o'}, "año", "windows-1252"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := DecodeText(tt.raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if text != tt.text || enc != tt.encoding {
				t.Fatalf("expected %q/%s, got %q/%s", tt.text, tt.encoding, text, enc)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	got, err := ReadText(strings.NewReader("Hola, y adiós."))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "Hola, y adiós." {
		t.Fatalf("unexpected text %q", got)
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
