package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

func newSpellsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "spells <name>",
		Short: "Look a spell up in the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			spell, ok := p.Catalog.Spell(name)
			if !ok {
				return apperrors.NotFoundf("spell '%s' not found", name)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, spell)
			}

			level := fmt.Sprintf("level %d %s", spell.Level, spell.School)
			if spell.IsCantrip() {
				level = fmt.Sprintf("%s cantrip", spell.School)
			}
			fmt.Fprintf(out, "%s (%s)\n", spell.Name, level)
			fmt.Fprintf(out, "Casting time: %s, range: %s, duration: %s\n", spell.CastingTime, spell.Range, spell.Duration)
			if spell.DamageDice != "" {
				fmt.Fprintf(out, "Damage: %s %s\n", spell.DamageDice, spell.DamageType)
			}
			if spell.HealingDice != "" {
				fmt.Fprintf(out, "Healing: %s\n", spell.HealingDice)
			}
			if spell.Description != "" {
				fmt.Fprintln(out, spell.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the spell record as JSON")
	return cmd
}
