package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("backlot %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestRosterListsEveryone(t *testing.T) {
	out := run(t, "roster")
	for _, want := range []string{"The Megastar", "The Has-Been", "hack_director"} {
		if !strings.Contains(out, want) {
			t.Errorf("roster missing %q", want)
		}
	}
}

func TestDialogueListsCharacters(t *testing.T) {
	out := run(t, "dialogue")
	for _, want := range []string{"marty", "vivian", "rex"} {
		if !strings.Contains(out, want) {
			t.Errorf("character list missing %q:\n%s", want, out)
		}
	}
}

func TestPlayArchivesRun(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "runs.db")
	out := run(t, "play", "--seed", "5", "--films", "3", "--archive", archive, "--log-level", "error")
	if !strings.Contains(out, "FINAL CUT") || !strings.Contains(out, "FILM 3") {
		t.Errorf("play output incomplete:\n%s", out)
	}
	hist := run(t, "history", "--archive", archive, "--log-level", "error")
	if !strings.Contains(hist, "3 films") {
		t.Errorf("history missing the run:\n%s", hist)
	}
}
