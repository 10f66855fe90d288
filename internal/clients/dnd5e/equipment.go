package dnd5e

import (
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/domain/shared"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func (c *client) GetWeapon(key string) (*rulebook.Weapon, error) {
	if key == "" {
		return nil, apperrors.MissingParam("GetWeapon.key")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get equipment %s", key)
	}

	weapon, ok := response.(*entities.Weapon)
	if !ok || weapon == nil {
		return nil, apperrors.NotFoundf("%s is not a weapon", key)
	}

	return apiWeaponToWeapon(weapon), nil
}

func (c *client) GetArmor(key string) (*rulebook.Armor, error) {
	if key == "" {
		return nil, apperrors.MissingParam("GetArmor.key")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get equipment %s", key)
	}

	armor, ok := response.(*entities.Armor)
	if !ok || armor == nil {
		return nil, apperrors.NotFoundf("%s is not armor", key)
	}

	return apiArmorToArmor(armor)
}

func apiWeaponToWeapon(input *entities.Weapon) *rulebook.Weapon {
	weapon := &rulebook.Weapon{
		Name:       input.Name,
		DamageDice: "1d4",
		DamageType: shared.Bludgeoning,
		Ranged:     strings.EqualFold(input.WeaponRange, "ranged"),
		Martial:    strings.EqualFold(input.WeaponCategory, "martial"),
		Weight:     float64(input.Weight),
		ValueGP:    decimal.Zero,
	}

	if input.Damage != nil {
		if input.Damage.DamageDice != "" {
			weapon.DamageDice = input.Damage.DamageDice
		}
		if input.Damage.DamageType != nil {
			if dt, err := shared.ParseDamageType(input.Damage.DamageType.Key); err == nil {
				weapon.DamageType = dt
			}
		}
	}

	for _, prop := range input.Properties {
		if prop == nil {
			continue
		}
		weapon.Properties = append(weapon.Properties,
			rulebook.WeaponProperty(strings.ReplaceAll(prop.Key, "-", "_")))
	}

	return weapon
}

func apiArmorToArmor(input *entities.Armor) (*rulebook.Armor, error) {
	armorType, err := rulebook.ParseArmorType(input.ArmorCategory)
	if err != nil {
		// shields come back from the same endpoint
		return nil, apperrors.Wrapf(err, "%s is not body armor", input.Name)
	}

	return &rulebook.Armor{
		Name:                input.Name,
		Type:                armorType,
		BaseAC:              input.ArmorClass.Base,
		StealthDisadvantage: input.StealthDisadvantage,
		Weight:              float64(input.Weight),
		ValueGP:             decimal.Zero,
	}, nil
}
