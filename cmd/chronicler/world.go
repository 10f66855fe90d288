package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chronicler/internal/domain/character"
	"github.com/KirkDiggler/chronicler/internal/domain/rulebook"
	"github.com/KirkDiggler/chronicler/internal/services/session"
)

func newWorldCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Create, inspect and delete stored worlds",
	}
	cmd.AddCommand(
		newWorldNewCmd(a),
		newWorldListCmd(a),
		newWorldShowCmd(a),
		newWorldDeleteCmd(a),
	)
	return cmd
}

func newWorldNewCmd(a *app) *cobra.Command {
	var (
		name   string
		player string
		class  string
		level  int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a world around a sample character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rulebook.ParseClass(class)
			if err != nil {
				return err
			}

			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			w, err := p.SessionService.CreateWorld(cmd.Context(), &session.CreateWorldInput{
				Name:   name,
				Player: sampleCharacter(player, c, level),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s (level %d %s)\n",
				w.ID, w.Name, w.Player.Name, w.Player.Level, c.Name())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "world name")
	cmd.Flags().StringVar(&player, "player", "Adventurer", "player character name")
	cmd.Flags().StringVar(&class, "class", "fighter", "player character class")
	cmd.Flags().IntVar(&level, "level", 1, "player character level")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// sampleCharacter uses the hand-built samples for level 1 and a generic
// build otherwise
func sampleCharacter(name string, class rulebook.Class, level int) *character.Character {
	if level <= 1 {
		switch class {
		case rulebook.Fighter:
			return character.NewSampleFighter(name)
		case rulebook.Cleric:
			return character.NewSampleCleric(name)
		case rulebook.Wizard:
			return character.NewSampleWizard(name)
		case rulebook.Barbarian:
			return character.NewSampleBarbarian(name)
		}
	}
	if class == rulebook.Rogue {
		return character.NewSampleRogue(name, max(level, 1))
	}
	return character.NewSample(name, class, max(level, 1))
}

func newWorldListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored worlds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			list, err := p.SessionService.ListWorlds(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No worlds.")
				return nil
			}
			for _, snap := range list {
				w := snap.World
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", w.ID, w.Name, w.Player.Name, w.CurrentLocation)
			}
			return nil
		},
	}
}

func newWorldShowCmd(a *app) *cobra.Command {
	var worldID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current state of a world as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			w, err := p.SessionService.GetWorld(cmd.Context(), worldID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVar(&worldID, "world", "", "world ID")
	_ = cmd.MarkFlagRequired("world")
	return cmd
}

func newWorldDeleteCmd(a *app) *cobra.Command {
	var worldID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a world and its effect log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			if err := p.SessionService.DeleteWorld(cmd.Context(), worldID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", worldID)
			return nil
		},
	}
	cmd.Flags().StringVar(&worldID, "world", "", "world ID")
	_ = cmd.MarkFlagRequired("world")
	return cmd
}
