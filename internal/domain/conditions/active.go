package conditions

// ActiveCondition is a condition currently affecting a character.
// DurationRounds nil means it lasts until removed.
type ActiveCondition struct {
	Type           ConditionType `json:"type"`
	Level          int           `json:"level,omitempty"`
	Source         string        `json:"source"`
	DurationRounds *int          `json:"duration_rounds,omitempty"`
}

func (a ActiveCondition) Label() string {
	return Label(a.Type, a.Level)
}

// List is the set of conditions on one character
type List []ActiveCondition

func (l List) Has(c ConditionType) bool {
	return l.Find(c) != nil
}

// Find returns the active entry for c, or nil
func (l List) Find(c ConditionType) *ActiveCondition {
	for i := range l {
		if l[i].Type == c {
			return &l[i]
		}
	}
	return nil
}

// Add applies c. Reapplying refreshes source and duration; exhaustion
// stacks one level at a time up to the maximum.
func (l List) Add(c ConditionType, level int, source string, rounds *int) List {
	if existing := l.Find(c); existing != nil {
		existing.Source = source
		existing.DurationRounds = copyRounds(rounds)
		if c == Exhaustion {
			existing.Level = min(existing.Level+max(level, 1), MaxExhaustionLevel)
		}
		return l
	}

	entry := ActiveCondition{Type: c, Source: source, DurationRounds: copyRounds(rounds)}
	if c == Exhaustion {
		entry.Level = min(max(level, 1), MaxExhaustionLevel)
	}
	return append(l, entry)
}

// Remove drops every entry of type c
func (l List) Remove(c ConditionType) List {
	out := l[:0]
	for _, a := range l {
		if a.Type != c {
			out = append(out, a)
		}
	}
	return out
}

// Tick counts one round off every timed condition and drops the ones that
// run out. Conditions without a duration are kept.
func (l List) Tick() List {
	out := l[:0]
	for _, a := range l {
		if a.DurationRounds != nil {
			remaining := *a.DurationRounds
			if remaining > 0 {
				remaining--
			}
			if remaining == 0 {
				continue
			}
			a.DurationRounds = &remaining
		}
		out = append(out, a)
	}
	return out
}

// ReduceExhaustion lowers exhaustion by one level, removing it at zero
func (l List) ReduceExhaustion() List {
	existing := l.Find(Exhaustion)
	if existing == nil {
		return l
	}
	existing.Level--
	if existing.Level <= 0 {
		return l.Remove(Exhaustion)
	}
	return l
}

// Clone returns an independent copy
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	for i, a := range l {
		a.DurationRounds = copyRounds(a.DurationRounds)
		out[i] = a
	}
	return out
}

func copyRounds(rounds *int) *int {
	if rounds == nil {
		return nil
	}
	v := *rounds
	return &v
}
