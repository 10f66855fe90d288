package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chronicler/internal/dice"
)

func newRollCmd(a *app) *cobra.Command {
	var adv, dis bool

	cmd := &cobra.Command{
		Use:     "roll <notation>",
		Short:   "Roll dice, e.g. 2d6+3 or 4d6kh3",
		Example: "  chronicler roll 1d20+5 --adv\n  chronicler roll 8d6",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := dice.Parse(strings.Join(args, ""))
			if err != nil {
				return err
			}

			mode := dice.Normal
			if adv {
				mode = mode.Combine(dice.WithAdvantage)
			}
			if dis {
				mode = mode.Combine(dice.WithDisadvantage)
			}

			result, err := expr.RollWithAdvantage(a.roller(), mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", expr, result)
			switch {
			case result.IsCritical():
				fmt.Fprintln(out, "Natural 20!")
			case result.IsFumble():
				fmt.Fprintln(out, "Natural 1.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&adv, "adv", false, "roll a single d20 with advantage")
	cmd.Flags().BoolVar(&dis, "dis", false, "roll a single d20 with disadvantage")
	return cmd
}
