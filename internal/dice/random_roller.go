package dice

import (
	"math/rand"
	"sync"
	"time"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

const (
	maxDiceCount = 100
	maxDieSides  = 1000
)

// randomRoller draws faces from a seeded source. The mutex makes a single
// roller safe to share between sessions.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validateDice(count, sides); err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	r.mu.Lock()
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
	}
	r.mu.Unlock()

	return sumRolls(rolls, sides, bonus), nil
}

func (r *randomRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, true)
}

func (r *randomRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, false)
}

func (r *randomRoller) rollTwice(sides, bonus int, higher bool) (*RollResult, error) {
	if err := validateDice(1, sides); err != nil {
		return nil, err
	}

	r.mu.Lock()
	first := r.rng.Intn(sides) + 1
	second := r.rng.Intn(sides) + 1
	r.mu.Unlock()

	return keepOne(first, second, sides, bonus, higher), nil
}

func validateDice(count, sides int) error {
	if count < 1 || count > maxDiceCount {
		return apperrors.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 || sides > maxDieSides {
		return apperrors.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}
