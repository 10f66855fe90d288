// Package effects defines the atomic state changes a resolution produces.
// A Resolution's effects are an ordered log and must be applied in order.
package effects

import (
	"encoding/json"
	"sort"
)

// Kind is the serialized discriminator of an Effect
type Kind string

// Effect is implemented only by the types in this package
type Effect interface {
	Kind() Kind
	isEffect()
}

type sealed struct{}

func (sealed) isEffect() {}

// New returns a zero value of the variant registered under kind
func New(kind Kind) (Effect, bool) {
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
	zero   func() Effect
	decode func(data []byte) (Effect, error)
}

var registry = map[Kind]variant{}

func register[T Effect]() {
	var zero T
	registry[zero.Kind()] = variant{
		zero: func() Effect {
			var v T
			return v
		},
		decode: func(data []byte) (Effect, error) {
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}
