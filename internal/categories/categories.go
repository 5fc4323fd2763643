// Package categories provides in-memory lookup over the expense category
// registry.
package categories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Registry holds the known expense categories for a session.
type Registry struct {
	order []string
	byKey map[string]model.Category
}

// NewRegistry creates a Registry from a slice of categories.
func NewRegistry(cats []model.Category) *Registry {
	r := &Registry{byKey: make(map[string]model.Category, len(cats))}
	for _, c := range cats {
		key := Normalize(c.Key)
		if _, ok := r.byKey[key]; ok {
			continue
		}
		r.order = append(r.order, key)
		r.byKey[key] = model.Category{Key: key, Name: c.Name}
	}
	return r
}

// Normalize lowercases and trims a category key for case-insensitive lookup.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// All returns all categories in registration order.
func (r *Registry) All() []model.Category {
	result := make([]model.Category, 0, len(r.order))
	for _, key := range r.order {
		result = append(result, r.byKey[key])
	}
	return result
}

// Get returns a category by key, case-insensitively.
func (r *Registry) Get(key string) (model.Category, bool) {
	c, ok := r.byKey[Normalize(key)]
	return c, ok
}

// Exists reports whether a category key is registered.
func (r *Registry) Exists(key string) bool {
	_, ok := r.byKey[Normalize(key)]
	return ok
}

// Name returns the display name for a key, falling back to a title-cased
// form of the key itself for free-form categories.
func (r *Registry) Name(key string) string {
	if c, ok := r.Get(key); ok {
		return c.Name
	}
	key = Normalize(key)
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// Register adds a free-form category, deriving a display name from the key
// when none is given. Returns the normalized key.
func (r *Registry) Register(key, name string) (string, error) {
	norm := Normalize(key)
	if norm == "" {
		return "", fmt.Errorf("category key must not be empty")
	}
	if _, ok := r.byKey[norm]; ok {
		return norm, nil
	}
	if name == "" {
		name = strings.ToUpper(norm[:1]) + norm[1:]
	}
	r.order = append(r.order, norm)
	r.byKey[norm] = model.Category{Key: norm, Name: name}
	return norm, nil
}

// Keys returns all registered keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	sort.Strings(keys)
	return keys
}
