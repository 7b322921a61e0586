package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/backlot-mogul/internal/talent"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List every talent archetype and what they cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("TALENT ROSTER"))
		fmt.Fprintf(out, "%-4s %-20s %-16s %6s %6s %6s %8s\n", "tier", "name", "key", "fee", "craft", "star", "min rep")
		for _, t := range talent.Roster() {
			minRep := "-"
			if t.RefuseBelow > 0 {
				minRep = fmt.Sprint(t.RefuseBelow)
			}
			name := t.Name
			if t.Demanding {
				name += "*"
			}
			fmt.Fprintf(out, "%-4s %-20s %-16s %6d %6d %6d %8s\n", t.Tier, name, t.Key, t.BaseCost, t.Craft, t.StarPower, minRep)
		}
		fmt.Fprintln(out, mutedStyle.Render("* makes demands on set"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}
