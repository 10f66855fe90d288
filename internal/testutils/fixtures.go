package testutils

import (
	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
)

// CreateTestWorld creates a world with a fixed id around a level 1 fighter
func CreateTestWorld(id, name string) *world.GameWorld {
	w := world.New(name, character.NewSampleFighter("Roland"))
	w.ID = id
	return w
}

// CreateTestWorldWithClass creates a world whose player has the given class and level
func CreateTestWorldWithClass(id string, class rulebook.Class, level int) *world.GameWorld {
	w := world.New("Test World", character.NewSample("Hero", class, level))
	w.ID = id
	return w
}

// CreateTestNPC creates a neutral NPC placed at locationID
func CreateTestNPC(id, name, locationID string) *world.NPC {
	return &world.NPC{
		ID:          id,
		Name:        name,
		Description: "A test NPC",
		LocationID:  locationID,
		Disposition: world.Neutral,
	}
}

// CreateTestLocation creates a town location with no connections
func CreateTestLocation(id, name string) *world.Location {
	return &world.Location{
		ID:          id,
		Name:        name,
		Description: "A test location",
		Type:        world.LocationTown,
	}
}
