// Package cmd contains the backlot CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talgya/backlot-mogul/internal/config"
	"github.com/talgya/backlot-mogul/internal/entropy"
	"github.com/talgya/backlot-mogul/internal/studio"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "backlot",
	Short: "Backlot Mogul - run a film studio that remembers everything",
	Long: `Backlot Mogul plays a film studio one picture at a time. Every choice
goes into the studio's ledger, and the ledger comes back: talent holds
grudges, the trades remember your streaks, and the rival across the street
copies your hits.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().Int64("seed", 0, "game seed (0 draws one)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// setup loads configuration and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// newSession starts a game from the loaded config.
func newSession() *studio.Session {
	seed := entropy.SeedOr(cfg.Seed)
	return studio.NewGame(studio.Options{
		Seed:       seed,
		Reputation: cfg.Reputation,
		Treasury:   cfg.Treasury,
		Logger:     slog.Default(),
	})
}

func newAutopilot(seed int64) *studio.Autopilot {
	a := studio.NewAutopilot(seed)
	a.AcceptRate = cfg.Autopilot.AcceptRate
	a.BluffRate = cfg.Autopilot.BluffRate
	a.LoyalRate = cfg.Autopilot.LoyalRate
	a.HotRate = cfg.Autopilot.HotRate
	return a
}
