package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chronicler/internal/config"
	"github.com/KirkDiggler/chronicler/internal/dice"
	"github.com/KirkDiggler/chronicler/internal/services"
)

// app carries what the subcommands share. The provider is built on first
// use so that commands like roll never dial redis.
type app struct {
	cfg      *config.Config
	provider *services.Provider
	verbose  bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "chronicler",
		Short:         "Deterministic D&D 5e rules kernel",
		Long:          "Resolve player intents against stored game worlds, roll dice and replay effect logs.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				log.SetOutput(io.Discard)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.provider == nil {
				return nil
			}
			return a.provider.Close()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log what the kernel is doing")

	root.AddCommand(
		newRollCmd(a),
		newResolveCmd(a),
		newReplayCmd(a),
		newHistoryCmd(a),
		newSpellsCmd(a),
		newWorldCmd(a),
	)
	return root
}

// services returns the provider, connecting backends on first call
func (a *app) services(ctx context.Context) (*services.Provider, error) {
	if a.provider != nil {
		return a.provider, nil
	}
	p, err := services.NewProviderFromConfig(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	a.provider = p
	return p, nil
}

func (a *app) roller() dice.Roller {
	if a.cfg != nil && a.cfg.Dice.Seed != 0 {
		return dice.NewSeededRoller(a.cfg.Dice.Seed)
	}
	return dice.NewRandomRoller()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
