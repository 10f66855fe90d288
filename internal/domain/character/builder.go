package character

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
)

// New builds a single-class character at level with full resources. Level 1
// HP is the maximum hit die plus CON; later levels add the die average.
func New(name, race string, class rulebook.Class, level int, scores AbilityScores) *Character {
	level = min(max(level, 1), 20)
	conMod := scores.Modifier(shared.Constitution)
	maxHP := class.HitDie() + conMod
	maxHP += (level - 1) * max(class.HitDieAverage()+conMod, 1)
	maxHP = max(maxHP, 1)

	c := &Character{
		ID:            uuid.NewString(),
		Name:          name,
		Race:          race,
		Classes:       []ClassLevel{{Class: class, Level: level}},
		Level:         level,
		Experience:    rulebook.ExperienceThresholds[level-1],
		AbilityScores: scores,
		HitPoints:     NewHitPoints(maxHP),
		HitDice:       HitDice{},
		Proficiencies: Proficiencies{SavingThrows: class.SavingThrows()},
		Features:      classFeatures(class, level),
		Speed:         30,
	}
	c.HitDice.Add(class.HitDie(), level)
	c.Resources.Initialize(class, level, scores.Modifier(shared.Charisma))

	if ability, casts := class.SpellcastingAbility(); casts {
		totals := class.SpellSlotsAtLevel(level)
		if hasAny(totals) || class == rulebook.Warlock {
			sc := &Spellcasting{Ability: ability}
			sc.Slots.Resize(totals)
			c.Spellcasting = sc
		}
	}
	return c
}

func classFeatures(class rulebook.Class, level int) Features {
	limited := func(name string, uses int, recharge RechargeType) Feature {
		return Feature{
			Name:   name,
			Source: class.Name(),
			Uses:   &FeatureUses{Current: uses, Maximum: uses, Recharge: recharge},
		}
	}
	passive := func(name string) Feature {
		return Feature{Name: name, Source: class.Name()}
	}

	var f Features
	switch class {
	case rulebook.Barbarian:
		f = append(f, limited(RageFeature, rulebook.RageUses(level), RechargeLongRest), passive("Unarmored Defense"))
	case rulebook.Bard:
		f = append(f, passive("Bardic Inspiration"))
	case rulebook.Cleric:
		if level >= 2 {
			f = append(f, limited("Channel Divinity", 1, RechargeShortRest))
		}
	case rulebook.Druid:
		if level >= 2 {
			f = append(f, limited("Wild Shape", 2, RechargeShortRest))
		}
	case rulebook.Fighter:
		f = append(f, passive("Fighting Style"), limited("Second Wind", 1, RechargeShortRest))
		if level >= 2 {
			f = append(f, limited("Action Surge", 1, RechargeShortRest))
		}
	case rulebook.Monk:
		f = append(f, passive("Unarmored Defense"), passive("Martial Arts"))
	case rulebook.Paladin:
		f = append(f, passive("Divine Sense"), passive("Lay on Hands"))
		if level >= 2 {
			f = append(f, passive("Divine Smite"))
		}
	case rulebook.Ranger:
		f = append(f, passive("Favored Enemy"))
	case rulebook.Rogue:
		f = append(f, passive("Sneak Attack"), passive("Expertise"))
	case rulebook.Sorcerer:
		if level >= 2 {
			f = append(f, passive("Font of Magic"))
		}
	case rulebook.Warlock:
		f = append(f, passive("Pact Magic"))
	case rulebook.Wizard:
		f = append(f, limited("Arcane Recovery", 1, RechargeLongRest))
	}
	return f
}

// Sample characters used by tests and the CLI's "world new" command.

// NewSampleFighter is a level 1 fighter with 28 hit points in chain mail
func NewSampleFighter(name string) *Character {
	c := New(name, "Human", rulebook.Fighter, 1, NewAbilityScores(16, 14, 15, 10, 12, 8))
	c.HitPoints = NewHitPoints(28)
	c.Proficiencies.Skills = []shared.Skill{shared.Athletics, shared.Perception}
	c.Proficiencies.Armor = []string{"light", "medium", "heavy", "shield"}
	c.Proficiencies.Weapons = []string{"simple", "martial"}
	c.Equipment.MainHand = &rulebook.Weapon{
		Name:       "Longsword",
		DamageDice: "1d8",
		DamageType: shared.Slashing,
		Martial:    true,
		Properties: []rulebook.WeaponProperty{rulebook.PropertyVersatile},
		Weight:     3,
		ValueGP:    decimal.NewFromInt(15),
	}
	c.Equipment.Armor = &rulebook.Armor{
		Name:                "Chain Mail",
		Type:                rulebook.ArmorHeavy,
		BaseAC:              16,
		StrengthRequirement: 13,
		StealthDisadvantage: true,
		Weight:              55,
		ValueGP:             decimal.NewFromInt(75),
	}
	c.Equipment.Shield = &Item{Name: "Shield", Quantity: 1, Type: rulebook.ItemShield, Weight: 6, ValueGP: decimal.NewFromInt(10)}
	c.Inventory = Inventory{
		Gold: 10,
		Items: []Item{
			{Name: "Potion of Healing", Quantity: 2, Type: rulebook.ItemPotion, Weight: 0.5, ValueGP: decimal.NewFromInt(50)},
			{Name: "Rope, hempen (50 feet)", Quantity: 1, Type: rulebook.ItemGear, Weight: 10, ValueGP: decimal.NewFromInt(1)},
			{Name: "Rations", Quantity: 5, Type: rulebook.ItemGear, Weight: 2, ValueGP: decimal.New(5, -1)},
		},
	}
	return c
}

// NewSampleCleric is a level 1 cleric of light with a few spells ready
func NewSampleCleric(name string) *Character {
	c := New(name, "Dwarf", rulebook.Cleric, 1, NewAbilityScores(14, 10, 14, 10, 16, 12))
	c.Speed = 25
	c.Proficiencies.Skills = []shared.Skill{shared.Medicine, shared.Religion}
	c.Spellcasting.CantripsKnown = []string{"Sacred Flame", "Light", "Guidance"}
	c.Spellcasting.SpellsPrepared = []string{"Cure Wounds", "Guiding Bolt", "Healing Word", "Bless"}
	c.Equipment.MainHand = &rulebook.Weapon{Name: "Mace", DamageDice: "1d6", DamageType: shared.Bludgeoning, Weight: 4, ValueGP: decimal.NewFromInt(5)}
	c.Equipment.Armor = &rulebook.Armor{Name: "Scale Mail", Type: rulebook.ArmorMedium, BaseAC: 14, StealthDisadvantage: true, Weight: 45, ValueGP: decimal.NewFromInt(50)}
	c.Equipment.Shield = &Item{Name: "Shield", Quantity: 1, Type: rulebook.ItemShield, Weight: 6, ValueGP: decimal.NewFromInt(10)}
	c.Inventory.Gold = 15
	return c
}

// NewSampleRogue is a rogue with a rapier and expertise in stealth
func NewSampleRogue(name string, level int) *Character {
	c := New(name, "Halfling", rulebook.Rogue, level, NewAbilityScores(10, 16, 12, 13, 12, 14))
	c.Speed = 25
	c.Proficiencies.Skills = []shared.Skill{shared.Stealth, shared.SleightOfHand, shared.Perception, shared.Deception}
	c.Proficiencies.Expertise = []shared.Skill{shared.Stealth, shared.SleightOfHand}
	c.Equipment.MainHand = &rulebook.Weapon{
		Name:       "Rapier",
		DamageDice: "1d8",
		DamageType: shared.Piercing,
		Martial:    true,
		Properties: []rulebook.WeaponProperty{rulebook.PropertyFinesse},
		Weight:     2,
		ValueGP:    decimal.NewFromInt(25),
	}
	c.Equipment.Armor = &rulebook.Armor{Name: "Leather Armor", Type: rulebook.ArmorLight, BaseAC: 11, Weight: 10, ValueGP: decimal.NewFromInt(10)}
	c.Inventory.Gold = 20
	return c
}

// NewSampleWizard is a level 1 evoker
func NewSampleWizard(name string) *Character {
	c := New(name, "Elf", rulebook.Wizard, 1, NewAbilityScores(8, 14, 13, 16, 12, 10))
	c.Proficiencies.Skills = []shared.Skill{shared.Arcana, shared.History}
	c.Spellcasting.CantripsKnown = []string{"Fire Bolt", "Mage Hand", "Light"}
	c.Spellcasting.SpellsKnown = []string{"Magic Missile", "Shield", "Burning Hands", "Sleep", "Mage Armor", "Thunderwave"}
	c.Spellcasting.SpellsPrepared = []string{"Magic Missile", "Shield", "Burning Hands", "Sleep"}
	c.Inventory.Gold = 10
	return c
}

// NewSampleBarbarian is a level 1 barbarian with a greataxe
func NewSampleBarbarian(name string) *Character {
	c := New(name, "Half-Orc", rulebook.Barbarian, 1, NewAbilityScores(16, 14, 16, 8, 12, 10))
	c.Proficiencies.Skills = []shared.Skill{shared.Athletics, shared.Intimidation}
	c.Equipment.MainHand = &rulebook.Weapon{
		Name:       "Greataxe",
		DamageDice: "1d12",
		DamageType: shared.Slashing,
		Martial:    true,
		Properties: []rulebook.WeaponProperty{rulebook.PropertyHeavy, rulebook.PropertyTwoHanded},
		Weight:     7,
		ValueGP:    decimal.NewFromInt(30),
	}
	return c
}

// NewSample returns a plain character of any class, for tests that only care
// about class resources
func NewSample(name string, class rulebook.Class, level int) *Character {
	return New(name, "Human", class, level, NewAbilityScores(14, 14, 14, 14, 14, 14))
}
