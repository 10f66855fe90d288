// Package intents defines the closed set of actions a character can declare.
// Every variant is a plain struct so it serializes and replays cleanly.
package intents

import (
	"encoding/json"
	"sort"
)

// Kind is the serialized discriminator of an Intent
type Kind string

// Intent is implemented only by the types in this package
type Intent interface {
	Kind() Kind
	isIntent()
}

// sealed is embedded by every variant to close the interface
type sealed struct{}

func (sealed) isIntent() {}

// New returns a zero value of the variant registered under kind
func New(kind Kind) (Intent, bool) {
	v, ok := registry[kind]
	if !ok {
		return nil, false
	}
	return v.zero(), true
}

// Kinds lists every registered variant, sorted
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type variant struct {
	zero   func() Intent
	decode func(data []byte) (Intent, error)
}

var registry = map[Kind]variant{}

// register adds the value type T to the closed set
func register[T Intent]() {
	var zero T
	registry[zero.Kind()] = variant{
		zero: func() Intent {
			var v T
			return v
		},
		decode: func(data []byte) (Intent, error) {
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}
