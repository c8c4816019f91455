package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var builtinFS embed.FS

var builtins = sync.OnceValue(func() map[Language]Profile {
	entries, err := builtinFS.ReadDir("profiles")
	if err != nil {
		panic(fmt.Sprintf("profile: read embedded profiles: %v", err))
	}
	out := make(map[Language]Profile, len(entries))
	for _, entry := range entries {
		raw, err := builtinFS.ReadFile("profiles/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("profile: read %s: %v", entry.Name(), err))
		}
		p, err := Parse(raw)
		if err != nil {
			panic(fmt.Sprintf("profile: %s: %v", entry.Name(), err))
		}
		out[p.Language] = p
	}
	if _, ok := out[Primary]; !ok {
		panic("profile: primary profile is not embedded")
	}
	return out
})

// Parse decodes and validates a single YAML profile record.
func Parse(raw []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile yaml: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return Normalize(p), nil
}

// LoadFile reads a profile from a YAML file.
func LoadFile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(raw)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// Builtin resolves selector against the embedded profiles only.
func Builtin(selector string) Profile {
	return NewRegistry().Resolve(selector)
}

// Registry maps language selectors to profiles. The zero value is not
// usable; create one with NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	profiles map[Language]Profile
	aliases  map[string]Language
}

// NewRegistry returns a registry preloaded with the embedded profiles.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[Language]Profile),
		aliases:  make(map[string]Language),
	}
	for _, p := range builtins() {
		r.add(p)
	}
	return r
}

// Register validates p and adds it, replacing any profile with the same
// code.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(Normalize(p))
	return nil
}

// LoadDir registers every *.yaml and *.yml file in dir. A missing
// directory is not an error.
func (r *Registry) LoadDir(dir string) ([]Language, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles dir: %w", err)
	}
	var loaded []Language
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return loaded, err
		}
		r.mu.Lock()
		r.add(p)
		r.mu.Unlock()
		loaded = append(loaded, p.Language)
	}
	return loaded, nil
}

func (r *Registry) add(p Profile) {
	r.profiles[p.Language] = p
	for _, alias := range p.Aliases {
		r.aliases[alias] = p.Language
	}
}

// Lookup finds the profile for selector without falling back. Selectors
// match codes and aliases case-insensitively, then by BCP 47 base language
// so "es-MX" finds "es".
func (r *Registry) Lookup(selector string) (Profile, bool) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if key == "" {
		return Profile{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.profiles[Language(key)]; ok {
		return p.Clone(), true
	}
	if code, ok := r.aliases[key]; ok {
		return r.profiles[code].Clone(), true
	}
	tag, err := language.Parse(key)
	if err != nil {
		return Profile{}, false
	}
	base, _ := tag.Base()
	if p, ok := r.profiles[Language(base.String())]; ok {
		return p.Clone(), true
	}
	return Profile{}, false
}

// Resolve returns the profile for selector. Empty or unknown selectors
// resolve to the primary profile; this never fails.
func (r *Registry) Resolve(selector string) Profile {
	if p, ok := r.Lookup(selector); ok {
		return p
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[Primary]; ok {
		return p.Clone()
	}
	return builtins()[Primary].Clone()
}

// List returns the registered profiles ordered by code.
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out
}
