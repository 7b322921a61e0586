package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/backlot-mogul/internal/ledger"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleLedger() ledger.Ledger {
	c := ledger.NewCounter()
	return ledger.Ledger{
		c.NewEntry(1, ledger.BeatConcept, ledger.TagGenrePicked, ledger.WithDetail("horror")),
		c.NewEntry(1, ledger.BeatTalent, ledger.TagTalentHired, ledger.WithActor("diva"), ledger.WithMeta("cost", 800)),
		c.NewEntry(1, ledger.BeatPremiere, ledger.TagFilmVerdict, ledger.WithDetail("hit"), ledger.WithMeta("title", "Night Shift"), ledger.WithSentiment(1)),
	}.MarkSurfaced(2)
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTemp(t)
	run := Run{ID: "run-1", Seed: 42, Films: 1, Style: "auteur", Reputation: 37, Treasury: 2900, FinishedAt: 100}
	if err := db.SaveRun(run, sampleLedger()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := db.Runs(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0] != run {
		t.Fatalf("runs = %+v", runs)
	}

	l, err := db.Ledger("run-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(l) != 3 {
		t.Fatalf("loaded %d entries, want 3", len(l))
	}
	if l[0].Tag != ledger.TagGenrePicked || l[0].Detail != "horror" || l[0].Turn != 1 {
		t.Errorf("entry 0 = %+v", l[0])
	}
	if !l[1].Surfaced || l[0].Surfaced {
		t.Error("surfaced flags not kept")
	}
	if l[1].MetaInt("cost") != 800 {
		t.Errorf("cost meta = %d", l[1].MetaInt("cost"))
	}
	if v, ok := l.LastVerdict(); !ok || v.MetaString("title") != "Night Shift" || v.Sentiment != 1 {
		t.Errorf("verdict = %+v", v)
	}
}

func TestSaveRunReplaces(t *testing.T) {
	db := openTemp(t)
	run := Run{ID: "run-1", Style: "shark", FinishedAt: 1}
	if err := db.SaveRun(run, sampleLedger()); err != nil {
		t.Fatal(err)
	}
	run.Style = "mogul"
	if err := db.SaveRun(run, sampleLedger()[:1]); err != nil {
		t.Fatal(err)
	}
	runs, err := db.Runs(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Style != "mogul" {
		t.Errorf("runs = %+v", runs)
	}
	l, err := db.Ledger("run-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(l) != 1 {
		t.Errorf("replaced run has %d entries, want 1", len(l))
	}
}

func TestRunsNewestFirst(t *testing.T) {
	db := openTemp(t)
	for i, id := range []string{"old", "new", "mid"} {
		at := map[string]int64{"old": 10, "mid": 20, "new": 30}[id]
		if err := db.SaveRun(Run{ID: id, Films: i, FinishedAt: at}, nil); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := db.Runs(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != "new" || runs[1].ID != "mid" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestLedgerUnknownRun(t *testing.T) {
	db := openTemp(t)
	l, err := db.Ledger("missing")
	if err != nil || len(l) != 0 {
		t.Errorf("Ledger(missing) = %v, %v", l, err)
	}
}
