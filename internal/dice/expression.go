package dice

import (
	"fmt"
	"sort"
	"strings"
)

// Keep says which dice of a group count toward its subtotal
type Keep int

const (
	KeepAll Keep = iota
	KeepHighest
	KeepLowest
)

// Group is one NdS term of an expression
type Group struct {
	Count     int  `json:"count"`
	Sides     int  `json:"sides"`
	Negative  bool `json:"negative,omitempty"`
	Keep      Keep `json:"keep,omitempty"`
	KeepCount int  `json:"keep_count,omitempty"`
}

func (g Group) String() string {
	s := fmt.Sprintf("%dd%d", g.Count, g.Sides)
	switch g.Keep {
	case KeepHighest:
		s += fmt.Sprintf("kh%d", g.KeepCount)
	case KeepLowest:
		s += fmt.Sprintf("kl%d", g.KeepCount)
	}
	return s
}

// Expression is parsed dice notation
type Expression struct {
	Groups   []Group `json:"groups"`
	Modifier int     `json:"modifier"`
	Original string  `json:"original,omitempty"`
}

// String renders canonical notation, e.g. "2d6+1d4-1"
func (e Expression) String() string {
	var b strings.Builder
	for i, g := range e.Groups {
		switch {
		case g.Negative:
			b.WriteString("-")
		case i > 0:
			b.WriteString("+")
		}
		b.WriteString(g.String())
	}

	switch {
	case len(e.Groups) == 0:
		fmt.Fprintf(&b, "%d", e.Modifier)
	case e.Modifier > 0:
		fmt.Fprintf(&b, "+%d", e.Modifier)
	case e.Modifier < 0:
		fmt.Fprintf(&b, "%d", e.Modifier)
	}
	return b.String()
}

// DiceCount is the number of dice rolled across all groups
func (e Expression) DiceCount() int {
	n := 0
	for _, g := range e.Groups {
		n += g.Count
	}
	return n
}

// IsSingleD20 reports whether advantage applies to this expression
func (e Expression) IsSingleD20() bool {
	return len(e.Groups) == 1 && e.Groups[0].Count == 1 && e.Groups[0].Sides == 20 && !e.Groups[0].Negative
}

// MultiplyDice scales every group's dice count; the modifier is untouched.
func (e Expression) MultiplyDice(factor int) Expression {
	out := e.clone()
	if factor < 1 {
		return out
	}
	for i := range out.Groups {
		out.Groups[i].Count *= factor
		if out.Groups[i].Keep != KeepAll {
			out.Groups[i].KeepCount *= factor
		}
	}
	out.Original = ""
	return out
}

// DoubleDice doubles the dice term for critical hits
func (e Expression) DoubleDice() Expression {
	return e.MultiplyDice(2)
}

// AddDice adds times copies of extra's dice and modifier. A group with the
// same die size is merged rather than appended.
func (e Expression) AddDice(extra Expression, times int) Expression {
	out := e.clone()
	if times < 1 {
		return out
	}
	for _, g := range extra.Groups {
		merged := false
		for i := range out.Groups {
			og := &out.Groups[i]
			if og.Sides == g.Sides && og.Negative == g.Negative && og.Keep == KeepAll && g.Keep == KeepAll {
				og.Count += g.Count * times
				merged = true
				break
			}
		}
		if !merged {
			g.Count *= times
			out.Groups = append(out.Groups, g)
		}
	}
	out.Modifier += extra.Modifier * times
	out.Original = ""
	return out
}

// AddModifier returns a copy with n added to the flat modifier
func (e Expression) AddModifier(n int) Expression {
	out := e.clone()
	out.Modifier += n
	out.Original = ""
	return out
}

func (e Expression) clone() Expression {
	out := e
	out.Groups = append([]Group(nil), e.Groups...)
	return out
}

// Roll evaluates the expression once
func (e Expression) Roll(r Roller) (*Result, error) {
	return e.RollWithAdvantage(r, Normal)
}

// RollWithAdvantage evaluates the expression. Advantage only changes
// single-d20 expressions.
func (e Expression) RollWithAdvantage(r Roller, mode Advantage) (*Result, error) {
	notation := e.Original
	if notation == "" {
		notation = e.String()
	}
	result := &Result{Expression: notation, Modifier: e.Modifier, Total: e.Modifier}

	if e.IsSingleD20() && mode != Normal {
		var (
			rolled *RollResult
			err    error
		)
		if mode == WithAdvantage {
			rolled, err = r.RollWithAdvantage(20, 0)
		} else {
			rolled, err = r.RollWithDisadvantage(20, 0)
		}
		if err != nil {
			return nil, err
		}
		result.addComponent(ComponentResult{
			Count:    1,
			Sides:    20,
			Rolls:    rolled.Rolls,
			Kept:     []int{rolled.RawTotal},
			Subtotal: rolled.RawTotal,
		})
		return result.finish(), nil
	}

	for _, g := range e.Groups {
		rolled, err := r.Roll(g.Count, g.Sides, 0)
		if err != nil {
			return nil, err
		}
		kept := keepDice(rolled.Rolls, g.Keep, g.KeepCount)
		subtotal := 0
		for _, k := range kept {
			subtotal += k
		}
		if g.Negative {
			subtotal = -subtotal
		}
		result.addComponent(ComponentResult{
			Count:    g.Count,
			Sides:    g.Sides,
			Negative: g.Negative,
			Rolls:    rolled.Rolls,
			Kept:     kept,
			Subtotal: subtotal,
		})
	}
	return result.finish(), nil
}

func keepDice(rolls []int, keep Keep, n int) []int {
	if keep == KeepAll || n >= len(rolls) {
		return append([]int(nil), rolls...)
	}
	sorted := append([]int(nil), rolls...)
	if keep == KeepHighest {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	} else {
		sort.Ints(sorted)
	}
	return sorted[:n]
}
