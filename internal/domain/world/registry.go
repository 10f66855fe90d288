package world

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
)

// Entity is anything kept in a Registry
type Entity interface {
	EntityID() string
	EntityName() string
}

// NameKey folds a name for case-insensitive comparison
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether a and b name the same thing
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// Registry holds entities by id with a folded-name index. Insertion order is
// kept for listing and serialization.
type Registry[T Entity] struct {
	byID   map[string]T
	byName map[string]string
	order  []string
}

// Get returns the entity with id
func (r *Registry[T]) Get(id string) (T, bool) {
	v, ok := r.byID[id]
	return v, ok
}

// Find does a case-insensitive name lookup
func (r *Registry[T]) Find(name string) (T, bool) {
	var zero T
	id, ok := r.byName[NameKey(name)]
	if !ok {
		return zero, false
	}
	return r.Get(id)
}

// Has reports whether name is taken
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.Find(name)
	return ok
}

// Put inserts v or replaces the entity with the same id
func (r *Registry[T]) Put(v T) {
	if r.byID == nil {
		r.byID = make(map[string]T)
		r.byName = make(map[string]string)
	}
	id := v.EntityID()
	if old, exists := r.byID[id]; exists {
		delete(r.byName, NameKey(old.EntityName()))
	} else {
		r.order = append(r.order, id)
	}
	r.byID[id] = v
	r.byName[NameKey(v.EntityName())] = id
}

// Delete removes the entity with id
func (r *Registry[T]) Delete(id string) bool {
	v, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	delete(r.byName, NameKey(v.EntityName()))
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry[T]) Len() int {
	return len(r.order)
}

// All returns the entities in insertion order
func (r *Registry[T]) All() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Clone copies the registry, duplicating every entity with dup
func (r *Registry[T]) Clone(dup func(T) T) Registry[T] {
	var out Registry[T]
	for _, v := range r.All() {
		out.Put(dup(v))
	}
	return out
}

func (r Registry[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.All())
}

func (r *Registry[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*r = Registry[T]{}
	for _, v := range items {
		r.Put(v)
	}
	return nil
}
