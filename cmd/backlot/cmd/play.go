package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/dialogue"
	"github.com/talgya/backlot-mogul/internal/press"
	"github.com/talgya/backlot-mogul/internal/studio"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run on autopilot and print the trades after every film",
	Long: `Play runs the studio on autopilot for --films pictures. After each
premiere the trade paper is printed with whatever the ledger brought back.

Example:
  backlot play --seed 42 --films 6`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int("films", 8, "films to play")
	viper.BindPFlag("films", playCmd.Flags().Lookup("films"))
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newSession()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s, seed %d", consequence.StudioName, s.Seed)))

	eng := studio.NewEngine(cfg.Films)
	wireOutput(eng, out, dialogue.Default())
	if err := eng.Run(ctx, s, newAutopilot(s.Seed+1)); err != nil {
		return fmt.Errorf("playing: %w", err)
	}

	if err := archiveRun(s); err != nil {
		return err
	}

	res := s.PlayStyle()
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("FINAL CUT"))
	fmt.Fprintf(out, "%s  %s\n", headlineStyle.Render(res.Label), mutedStyle.Render(res.Description))
	fmt.Fprintf(out, "%d films, reputation %d, treasury %d\n", s.Completed(), s.Reputation, s.Treasury)
	return nil
}

// wireOutput attaches printing callbacks to the engine phases.
func wireOutput(eng *studio.Engine, out io.Writer, lines *dialogue.Engine) {
	var report studio.PremiereReport

	eng.OnPreprod = func(s *studio.Session, cs []consequence.Consequence) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("FILM %d: %s", s.Film.Number, s.Film.Title)))
		say(out, "Marty", lines.Get(dialogue.Marty, dialogue.Greeting, s.DialogueCtx("", "")))
		printConsequences(out, cs)
	}
	eng.OnProduction = func(s *studio.Session, cs []consequence.Consequence) {
		fmt.Fprintf(out, "%s %s, %s, %s budget, cast of %d\n",
			mutedStyle.Render("shooting"), s.Film.Genre, s.Film.Rating, s.Film.Budget, len(s.Film.Cast))
		printConsequences(out, cs)
	}
	eng.OnPremiere = func(s *studio.Session, r studio.PremiereReport) {
		report = r
		fmt.Fprintf(out, "%s  earnings %d, critics %d\n", verdictStyle(r.Verdict).Render(string(r.Verdict)), r.Earnings, r.Critics)
		key := string(r.Verdict)
		say(out, "Marty", lines.Get(dialogue.Marty, dialogue.Premiere, s.DialogueCtx(key, "")))
		say(out, "Vivian", lines.Get(dialogue.Vivian, dialogue.Premiere, s.DialogueCtx(key, "")))
		printConsequences(out, r.Consequences)
	}
	eng.OnLot = func(s *studio.Session, cs []consequence.Consequence, news []string) {
		printConsequences(out, cs)
		if s.Nova.Introduced {
			say(out, "Rex", lines.Get(dialogue.Rex, dialogue.Taunt, s.DialogueCtx("", "")))
		}
		issue := press.Print(&press.IssueData{
			Film:         s.Film.Number,
			Title:        s.Film.Title,
			Verdict:      report.Verdict,
			Earnings:     report.Earnings,
			Critics:      report.Critics,
			Reputation:   s.Reputation,
			Treasury:     s.Treasury,
			Headlines:    news,
			Consequences: slices.Concat(report.Consequences, cs),
			Rival:        s.Nova,
			Style:        s.PlayStyle().Label,
		})
		fmt.Fprintln(out)
		fmt.Fprint(out, mutedStyle.Render(issue.Content))
		fmt.Fprintln(out)
		next := s.Market.Ranked(s.Film.Number + 1)
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("hot next: %v", next[:3])))
	}
}

func printConsequences(out io.Writer, cs []consequence.Consequence) {
	for _, c := range cs {
		fmt.Fprintf(out, "%s\n  %s\n", kindStyle(c.Kind).Render(c.Title), mutedStyle.Render(c.Description))
		if c.Dialogue != "" {
			fmt.Fprintln(out, quoteStyle.Render(fmt.Sprintf("%q", c.Dialogue)))
		}
	}
}

func say(out io.Writer, who, line string) {
	if line == "" || line == dialogue.Placeholder {
		return
	}
	fmt.Fprintln(out, quoteStyle.Render(fmt.Sprintf("%s: %q", who, line)))
}
