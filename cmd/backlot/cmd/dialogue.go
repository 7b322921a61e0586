package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/talgya/backlot-mogul/internal/dialogue"
	"github.com/talgya/backlot-mogul/internal/entropy"
)

var dialogueCmd = &cobra.Command{
	Use:   "dialogue [character] [context] [key]",
	Short: "Show what a character says in a context with a fresh ledger",
	Long: `With no arguments, list every character and the contexts they speak in.
Otherwise print the line the character would say.

Example:
  backlot dialogue marty premiere flop`,
	Args: cobra.MaximumNArgs(3),
	RunE: runDialogue,
}

func init() {
	rootCmd.AddCommand(dialogueCmd)
}

func runDialogue(cmd *cobra.Command, args []string) error {
	lines := dialogue.Default()
	out := cmd.OutOrStdout()

	if len(args) < 2 {
		for _, ch := range lines.Characters() {
			if len(args) == 1 && string(ch) != args[0] {
				continue
			}
			fmt.Fprintf(out, "%s %v\n", headlineStyle.Render(string(ch)), lines.Contexts(ch))
		}
		return nil
	}

	ctx := dialogue.Ctx{Rand: rand.New(rand.NewSource(entropy.SeedOr(cfg.Seed)))}
	if len(args) == 3 {
		ctx.Key = args[2]
	}
	fmt.Fprintln(out, quoteStyle.Render(lines.Get(dialogue.Character(args[0]), dialogue.Context(args[1]), ctx)))
	return nil
}
