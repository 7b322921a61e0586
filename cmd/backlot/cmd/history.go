package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/persistence"
	"github.com/talgya/backlot-mogul/internal/playstyle"
	"github.com/talgya/backlot-mogul/internal/studio"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List archived runs, or re-score one from its ledger",
	Long: `History reads the run archive written by play and style when --archive
is set. Given a run id it reloads that run's ledger and derives its
play-style again.

Example:
  backlot play --archive runs.db
  backlot history --archive runs.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.PersistentFlags().String("archive", "", "SQLite file to archive finished runs in")
	viper.BindPFlag("archive", rootCmd.PersistentFlags().Lookup("archive"))
	historyCmd.Flags().Int("limit", 20, "runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.Archive == "" {
		return fmt.Errorf("history needs --archive")
	}
	db, err := persistence.Open(cfg.Archive)
	if err != nil {
		return err
	}
	defer db.Close()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		l, err := db.Ledger(args[0])
		if err != nil {
			return fmt.Errorf("loading run %s: %w", args[0], err)
		}
		if len(l) == 0 {
			return fmt.Errorf("run %s not found", args[0])
		}
		res := playstyle.Derive(l)
		fmt.Fprintln(out, titleStyle.Render(res.Label))
		fmt.Fprintf(out, "%d entries, %d films completed\n", len(l), l.CountTag(ledger.TagFilmCompleted))
		for _, v := range []ledger.Verdict{ledger.VerdictBlockbuster, ledger.VerdictHit, ledger.VerdictModest, ledger.VerdictCult, ledger.VerdictFlop} {
			fmt.Fprintf(out, "%-12s %d\n", v, l.CountTag(ledger.VerdictTag(v)))
		}
		if g, n := l.FavoriteGenre(); n > 0 {
			fmt.Fprintf(out, "favorite genre %s (%d)\n", g, n)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := db.Runs(limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		when := time.Unix(r.FinishedAt, 0).Format(time.DateTime)
		fmt.Fprintf(out, "%s  %s  seed %-20d %2d films  %-9s rep %3d  treasury %d\n",
			mutedStyle.Render(when), r.ID, r.Seed, r.Films, r.Style, r.Reputation, r.Treasury)
	}
	return nil
}

// archiveRun stores a finished session when an archive is configured.
func archiveRun(s *studio.Session) error {
	if cfg.Archive == "" {
		return nil
	}
	db, err := persistence.Open(cfg.Archive)
	if err != nil {
		return err
	}
	defer db.Close()

	run := persistence.Run{
		ID:         s.ID.String(),
		Seed:       s.Seed,
		Films:      s.Completed(),
		Style:      string(s.PlayStyle().Style),
		Reputation: s.Reputation,
		Treasury:   s.Treasury,
		FinishedAt: time.Now().Unix(),
	}
	if err := db.SaveRun(run, s.Ledger); err != nil {
		return fmt.Errorf("archiving run: %w", err)
	}
	slog.Debug("archive written", "path", cfg.Archive)
	return nil
}
