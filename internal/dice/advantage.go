package dice

import (
	"strings"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Advantage selects how a single d20 is rolled
type Advantage int

const (
	Normal Advantage = iota
	WithAdvantage
	WithDisadvantage
)

// Combine merges two sources of advantage. Advantage and disadvantage
// cancel out; either one alongside Normal wins.
func (a Advantage) Combine(other Advantage) Advantage {
	switch {
	case a == other:
		return a
	case a == Normal:
		return other
	case other == Normal:
		return a
	default:
		return Normal
	}
}

func (a Advantage) String() string {
	switch a {
	case WithAdvantage:
		return "advantage"
	case WithDisadvantage:
		return "disadvantage"
	default:
		return "normal"
	}
}

// ParseAdvantage accepts "advantage", "disadvantage", "normal" or empty
func ParseAdvantage(s string) (Advantage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "none":
		return Normal, nil
	case "advantage", "adv":
		return WithAdvantage, nil
	case "disadvantage", "dis":
		return WithDisadvantage, nil
	}
	return Normal, apperrors.InvalidArgumentf("unknown advantage mode %q", s)
}

func (a Advantage) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Advantage) UnmarshalText(text []byte) error {
	parsed, err := ParseAdvantage(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
