package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the randomness source behind every roll. The engine only ever
// talks to this interface so tests can pin the faces that come up.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollWithAdvantage rolls one die twice and keeps the higher face
	RollWithAdvantage(sides, bonus int) (*RollResult, error)

	// RollWithDisadvantage rolls one die twice and keeps the lower face
	RollWithDisadvantage(sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of a single Roller call
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
	IsCrit   bool  `json:"is_crit"`
	IsFumble bool  `json:"is_fumble"`
}

// keepOne builds the result for advantage style rolls where two faces were
// rolled and one is kept.
func keepOne(first, second, sides, bonus int, higher bool) *RollResult {
	kept := first
	if higher && second > first || !higher && second < first {
		kept = second
	}

	result := &RollResult{
		Total:    kept + bonus,
		Rolls:    []int{first, second},
		Bonus:    bonus,
		Count:    1,
		Sides:    sides,
		RawTotal: kept,
	}
	if sides == 20 {
		result.IsCrit = kept == 20
		result.IsFumble = kept == 1
	}
	return result
}

// sumRolls builds the result for a plain roll of the given faces
func sumRolls(rolls []int, sides, bonus int) *RollResult {
	raw := 0
	for _, r := range rolls {
		raw += r
	}

	result := &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
		RawTotal: raw,
	}
	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}
	return result
}

// SumRolls is exported for Roller implementations outside this package
func SumRolls(rolls []int, sides, bonus int) *RollResult {
	return sumRolls(rolls, sides, bonus)
}

// KeepOne is exported for Roller implementations outside this package
func KeepOne(first, second, sides, bonus int, higher bool) *RollResult {
	return keepOne(first, second, sides, bonus, higher)
}
