package rules_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/conditions"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func TestAddItem(t *testing.T) {
	t.Run("catalog item picks up its stats", func(t *testing.T) {
		e, _ := newEngine()
		w := fighterWorld()

		res := resolveAndApply(t, e, w, intents.AddItem{ItemName: "torch", Quantity: 3})

		assert.Equal(t, "Roland receives 3 x torch (now has 3 total)", res.Narrative)
		torch := w.Player.Inventory.Find("Torch")
		require.NotNil(t, torch)
		assert.Equal(t, 3, torch.Quantity)
		assert.Equal(t, 1.0, torch.Weight)
	})

	t.Run("unknown item keeps what the caller said about it", func(t *testing.T) {
		e, _ := newEngine()
		w := fighterWorld()
		weight := 2.5
		value := decimal.NewFromInt(100)

		resolveAndApply(t, e, w, intents.AddItem{
			ItemName:    "Glowing Orb",
			Description: "Hums when undead are near",
			Magical:     true,
			Weight:      &weight,
			ValueGP:     &value,
		})

		orb := w.Player.Inventory.Find("Glowing Orb")
		require.NotNil(t, orb)
		assert.Equal(t, 1, orb.Quantity)
		assert.True(t, orb.Magical)
		assert.Equal(t, 2.5, orb.Weight)
		assert.True(t, value.Equal(orb.ValueGP))
		assert.Equal(t, "Hums when undead are near", orb.Description)
	})

	t.Run("stacks onto existing items", func(t *testing.T) {
		e, _ := newEngine()
		w := fighterWorld()

		res := resolveAndApply(t, e, w, intents.AddItem{ItemName: "Potion of Healing"})

		assert.Contains(t, res.Narrative, "(now has 3 total)")
		assert.Equal(t, 3, w.Player.Inventory.Find("Potion of Healing").Quantity)
	})

	t.Run("needs a name", func(t *testing.T) {
		e, _ := newEngine()
		res := e.Resolve(fighterWorld(), intents.AddItem{Quantity: 2})
		assert.True(t, res.Rejected())
	})
}

func TestRemoveItem(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()

	res := resolveAndApply(t, e, w, intents.RemoveItem{ItemName: "Rations", Quantity: 2})
	assert.Equal(t, "Roland loses 2 x Rations (3 remaining)", res.Narrative)
	assert.Equal(t, 3, w.Player.Inventory.Find("Rations").Quantity)

	tooMany := e.Resolve(w, intents.RemoveItem{ItemName: "Rations", Quantity: 10})
	assert.Contains(t, tooMany.Narrative, "(has 3, needs 10)")

	missing := e.Resolve(w, intents.RemoveItem{ItemName: "Lantern"})
	assert.Contains(t, missing.Narrative, "doesn't have any Lantern")

	resolveAndApply(t, e, w, intents.RemoveItem{ItemName: "Rations", Quantity: 3})
	assert.Nil(t, w.Player.Inventory.Find("Rations"))
}

func TestEquipItem(t *testing.T) {
	t.Run("two handed weapon needs the shield off", func(t *testing.T) {
		e, _ := newEngine()
		w := fighterWorld()
		resolveAndApply(t, e, w, intents.AddItem{ItemName: "Greatsword"})

		blocked := e.Resolve(w, intents.EquipItem{ItemName: "Greatsword"})
		assert.Contains(t, blocked.Narrative, "requires two hands but a shield is equipped")

		off := resolveAndApply(t, e, w, intents.UnequipItem{Slot: "shield"})
		assert.Contains(t, off.Narrative, "AC is now 16.")
		assert.Nil(t, w.Player.Equipment.Shield)
		assert.Equal(t, 16, w.Player.ArmorClass())

		resolveAndApply(t, e, w, intents.EquipItem{ItemName: "Greatsword"})
		require.NotNil(t, w.Player.Equipment.MainHand)
		assert.Equal(t, "Greatsword", w.Player.Equipment.MainHand.Name)
		assert.True(t, w.Player.Equipment.MainHand.IsTwoHanded())
	})

	t.Run("heavy armor without the strength", func(t *testing.T) {
		e, _ := newEngine()
		w := world.New("Test", character.NewSampleWizard("Elminster"))
		require.Equal(t, 12, w.Player.ArmorClass())
		resolveAndApply(t, e, w, intents.AddItem{ItemName: "Chain Mail"})

		res := resolveAndApply(t, e, w, intents.EquipItem{ItemName: "Chain Mail"})

		assert.Contains(t, res.Narrative, "doesn't meet the Strength 13 requirement (has 8)")
		assert.Contains(t, res.Narrative, "AC is now 16.")
		assert.True(t, res.Has(effects.KindACChanged))
		assert.Equal(t, 16, w.Player.ArmorClass())
	})

	t.Run("only weapons and armor", func(t *testing.T) {
		e, _ := newEngine()
		res := e.Resolve(fighterWorld(), intents.EquipItem{ItemName: "Rations"})
		assert.Contains(t, res.Narrative, "cannot be equipped")
	})

	t.Run("not carried", func(t *testing.T) {
		e, _ := newEngine()
		res := e.Resolve(fighterWorld(), intents.EquipItem{ItemName: "Plate Armor"})
		assert.Contains(t, res.Narrative, "doesn't have Plate Armor in their inventory")
	})
}

func TestUnequipItem_Rejections(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()

	bad := e.Resolve(w, intents.UnequipItem{Slot: "head"})
	assert.Contains(t, bad.Narrative, "Unknown equipment slot: head")

	empty := e.Resolve(w, intents.UnequipItem{Slot: "off_hand"})
	assert.Contains(t, empty.Narrative, "Nothing equipped in off_hand slot")
}

func TestUseItem_Potion(t *testing.T) {
	e, roller := newEngine(2, 3)
	w := fighterWorld()
	w.Player.HitPoints.Current = 10

	res := resolveAndApply(t, e, w, intents.UseItem{ItemName: "potion of healing"})

	assert.Contains(t, res.Narrative, "Roland drinks Potion of Healing and heals for 7 HP")
	assert.Equal(t, []effects.Kind{
		effects.KindDiceRolled,
		effects.KindItemUsed,
		effects.KindHPChanged,
		effects.KindItemRemoved,
	}, res.Kinds())
	assert.Equal(t, 17, w.Player.HitPoints.Current)
	assert.Equal(t, 1, w.Player.Inventory.Find("Potion of Healing").Quantity)
	assert.Zero(t, roller.Remaining())
}

func TestUseItem_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *character.Character)
		item  string
		want  string
	}{
		{name: "not consumable", item: "Rope, hempen (50 feet)", want: "is not a consumable item"},
		{name: "not carried", item: "Elixir", want: "doesn't have Elixir"},
		{
			name: "unconscious",
			setup: func(c *character.Character) {
				c.HitPoints.Current = 0
				c.Conditions = c.Conditions.Add(conditions.Unconscious, 0, "Dropped to 0 HP", nil)
			},
			item: "Potion of Healing",
			want: "is unconscious and cannot use items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine()
			w := fighterWorld()
			if tt.setup != nil {
				tt.setup(w.Player)
			}

			res := e.Resolve(w, intents.UseItem{ItemName: tt.item})
			assert.True(t, res.Rejected())
			assert.Contains(t, res.Narrative, tt.want)
		})
	}
}

func TestUseItem_Scroll(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()
	w.Player.Inventory.Add(character.Item{Name: "Scroll of Light", Quantity: 1, Type: rulebook.ItemScroll})

	res := resolveAndApply(t, e, w, intents.UseItem{ItemName: "Scroll of Light"})

	assert.Contains(t, res.Narrative, "crumbles to dust")
	assert.Nil(t, w.Player.Inventory.Find("Scroll of Light"))
}

func TestAdjustGold(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		reason   string
		wantText string
		wantGold int
		rejected bool
	}{
		{name: "reward", amount: 25, reason: "for the bounty", wantText: "Roland gains 25 gp for the bounty (now has 35 gp)", wantGold: 35},
		{name: "purchase", amount: -4, reason: "on supplies", wantText: "Roland spends 4 gp on supplies (now has 6 gp)", wantGold: 6},
		{name: "cannot go negative", amount: -15, wantText: "(has 10 gp, needs 15 gp)", wantGold: 10, rejected: true},
		{name: "zero", amount: 0, wantText: "Invalid gold amount", wantGold: 10, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine()
			w := fighterWorld()

			res := resolveAndApply(t, e, w, intents.AdjustGold{Amount: tt.amount, Reason: tt.reason})

			assert.Equal(t, tt.rejected, res.Rejected())
			assert.Contains(t, res.Narrative, tt.wantText)
			assert.Equal(t, tt.wantGold, w.Player.Inventory.Gold)
		})
	}
}

func TestAdjustSilver(t *testing.T) {
	e, _ := newEngine()
	w := fighterWorld()

	resolveAndApply(t, e, w, intents.AdjustSilver{Amount: 8, Reason: "from the pickpocket"})
	assert.Equal(t, 8, w.Player.Inventory.Silver)

	res := e.Resolve(w, intents.AdjustSilver{Amount: -9})
	assert.Contains(t, res.Narrative, "(has 8 sp, needs 9 sp)")
}
