package dice

import (
	"fmt"
	"strings"
)

// ComponentResult is the outcome of one dice group
type ComponentResult struct {
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	Negative bool  `json:"negative,omitempty"`
	Rolls    []int `json:"rolls"`
	Kept     []int `json:"kept"`
	Subtotal int   `json:"subtotal"`
}

// Result is the outcome of rolling an Expression. Natural20 and Natural1
// describe the primary d20's kept face and ignore modifiers.
type Result struct {
	Expression string            `json:"expression"`
	Components []ComponentResult `json:"components"`
	Modifier   int               `json:"modifier"`
	Total      int               `json:"total"`
	Natural20  bool              `json:"natural_20"`
	Natural1   bool              `json:"natural_1"`
}

func (r *Result) IsCritical() bool { return r.Natural20 }

func (r *Result) IsFumble() bool { return r.Natural1 }

// NaturalRoll is the kept face of the primary d20, or 0 when there is none
func (r *Result) NaturalRoll() int {
	for _, c := range r.Components {
		if c.Sides == 20 && len(c.Kept) == 1 {
			return c.Kept[0]
		}
	}
	return 0
}

func (r *Result) addComponent(c ComponentResult) {
	r.Components = append(r.Components, c)
	r.Total += c.Subtotal
}

func (r *Result) finish() *Result {
	face := r.NaturalRoll()
	r.Natural20 = face == 20
	r.Natural1 = face == 1
	return r
}

// String renders e.g. "[4, 5] + 3 = 12"; dropped dice show in parentheses.
func (r *Result) String() string {
	var parts []string
	for i, c := range r.Components {
		text := formatFaces(c.Kept)
		if dropped := droppedFaces(c.Rolls, c.Kept); len(dropped) > 0 {
			text += " (" + joinInts(dropped) + ")"
		}
		switch {
		case c.Negative:
			text = "- " + text
		case i > 0:
			text = "+ " + text
		}
		parts = append(parts, text)
	}

	switch {
	case len(parts) == 0:
		parts = append(parts, fmt.Sprintf("%d", r.Modifier))
	case r.Modifier > 0:
		parts = append(parts, fmt.Sprintf("+ %d", r.Modifier))
	case r.Modifier < 0:
		parts = append(parts, fmt.Sprintf("- %d", -r.Modifier))
	}
	return fmt.Sprintf("%s = %d", strings.Join(parts, " "), r.Total)
}

func formatFaces(faces []int) string {
	return "[" + joinInts(faces) + "]"
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(s, ", ")
}

func droppedFaces(rolls, kept []int) []int {
	remaining := make(map[int]int, len(kept))
	for _, k := range kept {
		remaining[k]++
	}
	var dropped []int
	for _, r := range rolls {
		if remaining[r] > 0 {
			remaining[r]--
			continue
		}
		dropped = append(dropped, r)
	}
	return dropped
}
