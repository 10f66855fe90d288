package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		worldID    string
		intentPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one intent against a stored world",
		Long: `Reads an intent envelope such as {"type": "AdvanceTime", "data": {"minutes": 60}}
from --intent (or stdin with "-"), resolves it, journals the effects and saves the world.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), intentPath)
			if err != nil {
				return err
			}
			intent, err := intents.Unmarshal(data)
			if err != nil {
				return err
			}

			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			result, err := p.SessionService.Resolve(cmd.Context(), worldID, intent)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, result.Resolution)
			}
			fmt.Fprintln(out, result.Resolution.Narrative)
			if result.Resolution.Rejected() {
				fmt.Fprintln(out, "(rejected, nothing changed)")
				return nil
			}
			for _, entry := range result.Entries {
				fmt.Fprintf(out, "  #%d %s\n", entry.Seq, entry.Effect.Kind())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&worldID, "world", "", "world ID")
	cmd.Flags().StringVar(&intentPath, "intent", "-", `intent JSON file, "-" for stdin`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resolution as JSON")
	_ = cmd.MarkFlagRequired("world")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument, "failed to read intent file").
			WithMeta("path", path)
	}
	return data, nil
}
