package press

import (
	"strings"
	"testing"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
)

func TestPrintSections(t *testing.T) {
	issue := Print(&IssueData{
		Film:       3,
		Title:      "Night of the Comet",
		Verdict:    ledger.VerdictHit,
		Earnings:   2100,
		Critics:    71,
		Reputation: 48,
		Treasury:   3900,
		Headlines:  []string{"Audiences line up around the block for Night of the Comet"},
		Consequences: []consequence.Consequence{
			{Kind: consequence.KindCallback, Title: "BREAKING GROUND", Description: "The Commissary is up."},
			{Kind: consequence.KindWarning, Title: "AUDIENCE FATIGUE", Description: "Three in a row."},
		},
		Rival: nova.State{Introduced: true, Reputation: 44, Films: []nova.Film{{Title: "Neon Harbor", Genre: "drama", Verdict: ledger.VerdictModest}}},
		Style: "The Shark",
	})

	if issue.Number != 3 {
		t.Errorf("Number = %d, want 3", issue.Number)
	}
	for _, want := range []string{
		Masthead,
		"Issue 3",
		"Night of the Comet opened as a hit: 2100 in earnings, critics at 71.",
		"- Audiences line up around the block for Night of the Comet",
		"ON THE LOT\n- BREAKING GROUND: The Commissary is up.",
		"INDUSTRY WATCH\n- AUDIENCE FATIGUE: Three in a row.",
		"Nova Pictures released Neon Harbor, a drama picture, to a modest reception.",
		"Pacific Dreams reputation 48, treasury 3900.",
		"Around town they call you The Shark.",
	} {
		if !strings.Contains(issue.Content, want) {
			t.Errorf("issue missing %q:\n%s", want, issue.Content)
		}
	}
}

func TestPrintOmitsEmptySections(t *testing.T) {
	issue := Print(&IssueData{Film: 1})
	for _, absent := range []string{"OPENING WEEKEND", "THE TICKER", "ON THE LOT", "INDUSTRY WATCH", "ACROSS THE STREET", "Around town"} {
		if strings.Contains(issue.Content, absent) {
			t.Errorf("empty issue contains %q", absent)
		}
	}
	if !strings.Contains(issue.Content, "STUDIO LEDGER") {
		t.Error("studio ledger missing")
	}
}

func TestPrintTruncatesTicker(t *testing.T) {
	lines := make([]string, 9)
	for i := range lines {
		lines[i] = "rumor"
	}
	issue := Print(&IssueData{Film: 2, Headlines: lines})
	if n := strings.Count(issue.Content, "- rumor"); n != 6 {
		t.Errorf("printed %d headlines, want 6", n)
	}
	if !strings.Contains(issue.Content, "...and 3 more.") {
		t.Error("missing overflow line")
	}
}
