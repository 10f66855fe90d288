// Package dice parses dice notation and rolls it against an injectable Roller.
package dice

import (
	"log"
)

// Roll parses notation and rolls it
func Roll(r Roller, notation string) (*Result, error) {
	return RollWithAdvantage(r, notation, Normal)
}

// RollWithAdvantage parses notation and rolls it with the given mode
func RollWithAdvantage(r Roller, notation string, mode Advantage) (*Result, error) {
	expr, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	return expr.RollWithAdvantage(r, mode)
}

// RollWithFallback never fails. It tries notation, then fallback, and as a
// last resort reports a single d4 showing 1.
func RollWithFallback(r Roller, notation, fallback string) *Result {
	result, err := Roll(r, notation)
	if err == nil {
		return result
	}
	log.Printf("Dice: could not roll %q (%v), using %q", notation, err, fallback)

	result, err = Roll(r, fallback)
	if err == nil {
		return result
	}
	log.Printf("Dice: fallback %q failed (%v), using minimal result", fallback, err)

	return &Result{
		Expression: fallback,
		Components: []ComponentResult{{
			Count:    1,
			Sides:    4,
			Rolls:    []int{1},
			Kept:     []int{1},
			Subtotal: 1,
		}},
		Total: 1,
	}
}
