package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		worldID string
		restore bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Rebuild a world from its initial snapshot and effect log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}

			replay := p.SessionService.Replay
			if restore {
				replay = p.SessionService.Restore
			}
			w, err := replay(cmd.Context(), worldID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVar(&worldID, "world", "", "world ID")
	cmd.Flags().BoolVar(&restore, "restore", false, "save the replayed world as the current state")
	_ = cmd.MarkFlagRequired("world")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var worldID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the effect log of a world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := p.SessionService.History(cmd.Context(), worldID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No effects logged.")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%4d  %s  %-24s %s\n",
					entry.Seq, entry.RecordedAt.Format(time.RFC3339), entry.Effect.Kind(), entry.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&worldID, "world", "", "world ID")
	_ = cmd.MarkFlagRequired("world")
	return cmd
}
