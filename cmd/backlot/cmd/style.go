package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/backlot-mogul/internal/playstyle"
	"github.com/talgya/backlot-mogul/internal/studio"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Play a silent run and show the play-style it earned",
	RunE:  runStyle,
}

func init() {
	rootCmd.AddCommand(styleCmd)
}

func runStyle(cmd *cobra.Command, args []string) error {
	s := newSession()
	if err := studio.NewEngine(cfg.Films).Run(context.Background(), s, newAutopilot(s.Seed+1)); err != nil {
		return fmt.Errorf("playing: %w", err)
	}

	if err := archiveRun(s); err != nil {
		return err
	}

	res := s.PlayStyle()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(res.Label))
	fmt.Fprintln(out, mutedStyle.Render(res.Description))
	for _, st := range playstyle.Order {
		score := res.Scores[st]
		bar := strings.Repeat("#", min(score, 40))
		line := fmt.Sprintf("%-9s %4d %s", st, score, bar)
		if st == res.Style {
			line = headlineStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "seed %d, %d films, %d ledger entries\n", s.Seed, s.Completed(), len(s.Ledger))
	return nil
}
