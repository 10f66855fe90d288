package world

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/combat"
)

// Mode is what the table is doing right now
type Mode string

const (
	ModeExploration Mode = "exploration"
	ModeCombat      Mode = "combat"
)

// DefaultYear is the campaign year new worlds start in
const DefaultYear = 1492

// GameWorld is the authoritative state one session plays against. Resolvers
// only read it; the applier is the only thing that writes it.
type GameWorld struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Player          *character.Character `json:"player"`
	Combat          *combat.State        `json:"combat,omitempty"`
	Mode            Mode                 `json:"mode"`
	Time            GameTime             `json:"time"`
	NPCs            Registry[*NPC]       `json:"npcs"`
	Locations       Registry[*Location]  `json:"locations"`
	Quests          Registry[*Quest]     `json:"quests"`
	CurrentLocation string               `json:"current_location"`
}

// New creates a world in exploration mode around player
func New(name string, player *character.Character) *GameWorld {
	return &GameWorld{
		ID:              uuid.NewString(),
		Name:            name,
		Player:          player,
		Mode:            ModeExploration,
		Time:            NewGameTime(DefaultYear),
		CurrentLocation: "Unknown",
	}
}

// InCombat reports whether a fight is running
func (w *GameWorld) InCombat() bool {
	return w.Combat != nil
}

// StartCombat replaces any running fight with a fresh one
func (w *GameWorld) StartCombat() *combat.State {
	w.Mode = ModeCombat
	w.Combat = combat.NewState()
	return w.Combat
}

func (w *GameWorld) EndCombat() {
	w.Combat = nil
	w.Mode = ModeExploration
}

// ShortRest refreshes the player's short-rest resources
func (w *GameWorld) ShortRest() {
	if w.Player != nil {
		w.Player.ShortRest()
	}
}

// LongRest refreshes everything a night's sleep restores
func (w *GameWorld) LongRest() {
	if w.Player != nil {
		w.Player.LongRest()
	}
}

// LocationName resolves a location id to its name, "" when unknown
func (w *GameWorld) LocationName(id string) string {
	if loc, ok := w.Locations.Get(id); ok {
		return loc.Name
	}
	return ""
}

// Clone returns a deep copy that shares nothing with w
func (w *GameWorld) Clone() *GameWorld {
	if w == nil {
		return nil
	}
	out := *w
	out.Player = w.Player.Clone()
	out.Combat = w.Combat.Clone()
	out.NPCs = w.NPCs.Clone((*NPC).Clone)
	out.Locations = w.Locations.Clone((*Location).Clone)
	out.Quests = w.Quests.Clone((*Quest).Clone)
	return &out
}
