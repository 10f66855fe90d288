package effects

import (
	"fmt"
	"strings"
)

// Resolution is what resolving one intent produces. No effects means the
// action was rejected or changed nothing; the narrative says which.
type Resolution struct {
	Effects   []Effect `json:"-"`
	Narrative string   `json:"narrative"`
}

// Rejected reports whether the resolution carries no mechanical change
func (r Resolution) Rejected() bool {
	return len(r.Effects) == 0
}

// Has reports whether any effect of kind is present
func (r Resolution) Has(kind Kind) bool {
	return r.Count(kind) > 0
}

func (r Resolution) Count(kind Kind) int {
	n := 0
	for _, e := range r.Effects {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// Kinds lists the effect kinds in order, handy for asserting sequences
func (r Resolution) Kinds() []Kind {
	out := make([]Kind, len(r.Effects))
	for i, e := range r.Effects {
		out[i] = e.Kind()
	}
	return out
}

// Reject returns an effect-free resolution explaining why nothing happened
func Reject(format string, args ...any) Resolution {
	return Resolution{Narrative: fmt.Sprintf(format, args...)}
}

// Builder assembles a Resolution one sentence and effect at a time
type Builder struct {
	lines   []string
	effects []Effect
}

// NewBuilder starts a resolution with an opening line
func NewBuilder(format string, args ...any) *Builder {
	b := &Builder{}
	return b.Line(format, args...)
}

// Line appends a sentence to the narrative
func (b *Builder) Line(format string, args ...any) *Builder {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
	return b
}

// Append adds text to the last sentence
func (b *Builder) Append(format string, args ...any) *Builder {
	text := fmt.Sprintf(format, args...)
	if len(b.lines) == 0 {
		b.lines = append(b.lines, text)
		return b
	}
	b.lines[len(b.lines)-1] += text
	return b
}

// Add appends effects in order
func (b *Builder) Add(effects ...Effect) *Builder {
	b.effects = append(b.effects, effects...)
	return b
}

// Build joins the narrative lines with spaces
func (b *Builder) Build() Resolution {
	return Resolution{
		Effects:   b.effects,
		Narrative: strings.Join(b.lines, " "),
	}
}
