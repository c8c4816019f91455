package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinProfilesAreValid(t *testing.T) {
	for _, p := range NewRegistry().List() {
		t.Run(string(p.Language), func(t *testing.T) {
			require.NoError(t, p.Validate())
			assert.Len(t, p.FunctionWords, 10)
			assert.NotEmpty(t, p.ForbiddenExpressions)
			assert.NotEmpty(t, p.ProblematicAdjectives)
		})
	}
}

func TestBuiltinSpanishProfile(t *testing.T) {
	p := Builtin("es")

	assert.Equal(t, Spanish, p.Language)
	assert.Equal(t, "y", p.Connective)
	assert.Equal(t, []string{"ado", "ido"}, p.Participle.Suffixes)
	assert.Contains(t, p.Participle.Exclusions, "estado")
	assert.Equal(t, []string{"ando", "endo"}, p.Gerund.Suffixes)
	assert.Empty(t, p.Gerund.Exclusions)
	assert.Equal(t, []string{"y", "pero", "que", "de", "el", "la", "en", "con", "por", "para"}, p.FunctionWords)
	assert.Equal(t, "ya que", p.ForbiddenExpressions[0])
}

func TestBuiltinEnglishProfile(t *testing.T) {
	p := Builtin("en")

	assert.Equal(t, English, p.Language)
	assert.Equal(t, "and", p.Connective)
	assert.Equal(t, 4, p.Participle.LongerThan)
	assert.Equal(t, 4, p.Gerund.LongerThan)
	assert.Contains(t, p.Gerund.Exclusions, "during")
	assert.NotContains(t, p.Gerund.Exclusions, "running")
}

func TestResolveSelectors(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		selector string
		want     Language
	}{
		{"es", Spanish},
		{"EN", English},
		{" english ", English},
		{"Español", Spanish},
		{"es-MX", Spanish},
		{"en-GB", English},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.selector).Language)
		})
	}
}

// Unknown selectors fall back to the primary profile without an error.
func TestResolveUnknownSelectorFallsBackToPrimary(t *testing.T) {
	r := NewRegistry()
	for _, selector := range []string{"", "fr", "klingon", "🇺🇸 English?", "zz-ZZ"} {
		_, found := r.Lookup(selector)
		assert.False(t, found, "selector %q", selector)
		assert.Equal(t, Primary, r.Resolve(selector).Language, "selector %q", selector)
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	r := NewRegistry()
	first := r.Resolve("es")
	first.ForbiddenExpressions[0] = "mutated"

	second := r.Resolve("es")
	assert.Equal(t, "ya que", second.ForbiddenExpressions[0])
}

func TestRegisterRejectsInvalidProfile(t *testing.T) {
	err := NewRegistry().Register(Profile{Language: "pt"})
	require.ErrorIs(t, err, ErrInvalidProfile)
}

func TestRegisterNormalizesCase(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Profile{
		Language:      "PT",
		Name:          "Português",
		Aliases:       []string{"Portuguese"},
		Connective:    "E",
		FunctionWords: []string{"E", "Mas"},
		Participle:    SuffixRule{Suffixes: []string{"ADO", "ido"}},
		Gerund:        SuffixRule{Suffixes: []string{"ando", "endo", "indo"}},
	}))

	p, ok := r.Lookup("portuguese")
	require.True(t, ok)
	assert.Equal(t, Language("pt"), p.Language)
	assert.Equal(t, "e", p.Connective)
	assert.Equal(t, []string{"e", "mas"}, p.FunctionWords)
	assert.Equal(t, []string{"ado", "ido"}, p.Participle.Suffixes)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	doc := `language: it
name: Italiano
aliases: [italian]
connective: e
function_words: [e, ma, che]
participle:
  suffixes: [ato, ito, uto]
gerund:
  suffixes: [ando, endo]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	r := NewRegistry()
	loaded, err := r.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []Language{"it"}, loaded)
	assert.Equal(t, Language("it"), r.Resolve("italian").Language)
	assert.Len(t, r.List(), 3)
}

func TestLoadDirMissingIsNotAnError(t *testing.T) {
	loaded, err := NewRegistry().LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: xx\n"), 0o644))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidProfile)
}
