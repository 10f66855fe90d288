package character

// HitPoints tracks current, maximum and temporary hit points
type HitPoints struct {
	Current   int `json:"current"`
	Maximum   int `json:"maximum"`
	Temporary int `json:"temporary"`
}

func NewHitPoints(maximum int) HitPoints {
	return HitPoints{Current: maximum, Maximum: maximum}
}

// DamageResult describes what a hit did to the pool
type DamageResult struct {
	Taken          int
	AbsorbedByTemp int
	DroppedToZero  bool
}

// TakeDamage burns temporary hit points first and never drops below zero
func (hp *HitPoints) TakeDamage(amount int) DamageResult {
	if amount <= 0 {
		return DamageResult{}
	}
	result := DamageResult{Taken: amount}
	remaining := amount
	if hp.Temporary > 0 {
		absorbed := min(hp.Temporary, remaining)
		hp.Temporary -= absorbed
		remaining -= absorbed
		result.AbsorbedByTemp = absorbed
	}
	if remaining == 0 {
		return result
	}
	hp.Current -= remaining
	if hp.Current <= 0 {
		hp.Current = 0
		result.DroppedToZero = true
	}
	return result
}

// Heal raises current up to the maximum and returns the amount actually restored
func (hp *HitPoints) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if hp.Current < 0 {
		hp.Current = 0
	}
	before := hp.Current
	hp.Current = min(hp.Current+amount, hp.Maximum)
	return hp.Current - before
}

// AddTemporary keeps the larger of the existing and new temporary pools
func (hp *HitPoints) AddTemporary(amount int) {
	hp.Temporary = max(hp.Temporary, amount)
}

func (hp HitPoints) IsDown() bool {
	return hp.Current <= 0
}

// Status is the short wound description used in narrative
func (hp HitPoints) Status() string {
	switch {
	case hp.Current <= 0:
		return "unconscious"
	case hp.Current <= hp.Maximum/4:
		return "critically wounded"
	case hp.Current <= hp.Maximum/2:
		return "bloodied"
	}
	return ""
}

// HitDiePool counts hit dice of one size
type HitDiePool struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// HitDice is keyed by die size (6, 8, 10, 12)
type HitDice map[int]HitDiePool

func (h HitDice) Add(sides, count int) {
	pool := h[sides]
	pool.Total += count
	pool.Remaining += count
	h[sides] = pool
}

// Spend uses one die of the given size
func (h HitDice) Spend(sides int) bool {
	pool, ok := h[sides]
	if !ok || pool.Remaining == 0 {
		return false
	}
	pool.Remaining--
	h[sides] = pool
	return true
}

// RecoverHalf restores half of each pool's total, rounded up
func (h HitDice) RecoverHalf() {
	for sides, pool := range h {
		pool.Remaining = min(pool.Remaining+(pool.Total+1)/2, pool.Total)
		h[sides] = pool
	}
}

func (h HitDice) Clone() HitDice {
	out := make(HitDice, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// MaxDeathSaves is the count of successes or failures that ends the dying state
const MaxDeathSaves = 3

type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// AddFailures records n failures and reports whether the character died
func (d *DeathSaves) AddFailures(n int) bool {
	d.Failures = min(d.Failures+n, MaxDeathSaves)
	return d.Failures >= MaxDeathSaves
}

// SetSuccesses records the running success count and reports stabilization
func (d *DeathSaves) SetSuccesses(n int) bool {
	d.Successes = min(max(n, 0), MaxDeathSaves)
	return d.Successes >= MaxDeathSaves
}

func (d *DeathSaves) Reset() {
	d.Successes = 0
	d.Failures = 0
}
