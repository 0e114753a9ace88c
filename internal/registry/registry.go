// Package registry collects the unique translatable strings found during a
// document walk and serializes them as a translation dictionary.
package registry

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/i18nmark/i18nmark/internal/textrules"
)

// Registry maps each normalized translatable string to itself, the
// pre-translation default. One instance is scoped to a single run.
type Registry struct {
	keys map[string]string
}

func New() *Registry {
	return &Registry{keys: make(map[string]string)}
}

// Add normalizes text and records it as a key mapping to itself, returning
// the key. Adding a string whose normalized form is already present is a
// no-op.
func (r *Registry) Add(text string) string {
	key := textrules.Normalize(text)
	if key == "" {
		return key
	}
	if _, ok := r.keys[key]; !ok {
		r.keys[key] = key
	}
	return key
}

// Has reports whether key is registered in its exact normalized form.
func (r *Registry) Has(key string) bool {
	_, ok := r.keys[key]
	return ok
}

func (r *Registry) Len() int { return len(r.keys) }

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.keys))
	for k := range r.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteJSON emits the full mapping as a pretty-printed JSON object with
// sorted keys. HTML escaping is disabled so the dictionary stays readable
// for translators working on non-ASCII text.
func (r *Registry) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(r.keys)
}
