// Package press formats the trade paper printed after each film.
package press

import (
	"fmt"
	"strings"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/ledger"
	"github.com/talgya/backlot-mogul/internal/nova"
)

// Masthead is the paper's name.
const Masthead = "THE BACKLOT REPORTER"

// IssueData is everything an issue reports on.
type IssueData struct {
	Film         int
	Title        string
	Verdict      ledger.Verdict
	Earnings     int
	Critics      int
	Reputation   int
	Treasury     int
	Headlines    []string // From consequence.GenerateNews
	Consequences []consequence.Consequence
	Rival        nova.State
	Style        string // Play-style label, optional
}

// Issue is one printed edition.
type Issue struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// Print lays out an issue from data.
func Print(data *IssueData) *Issue {
	return &Issue{Number: data.Film, Content: format(data)}
}

func format(data *IssueData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", Masthead)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", len(Masthead)))
	fmt.Fprintf(&b, "Issue %d\n\n", data.Film)

	if data.Title != "" {
		fmt.Fprintf(&b, "OPENING WEEKEND\n")
		fmt.Fprintf(&b, "%s opened as a %s: %d in earnings, critics at %d.\n\n", data.Title, data.Verdict, data.Earnings, data.Critics)
	}

	if len(data.Headlines) > 0 {
		fmt.Fprintf(&b, "THE TICKER\n")
		for i, h := range data.Headlines {
			if i >= 6 {
				fmt.Fprintf(&b, "...and %d more.\n", len(data.Headlines)-6)
				break
			}
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	var stories, warnings []consequence.Consequence
	for _, c := range data.Consequences {
		if c.Kind == consequence.KindWarning {
			warnings = append(warnings, c)
			continue
		}
		stories = append(stories, c)
	}
	if len(stories) > 0 {
		fmt.Fprintf(&b, "ON THE LOT\n")
		for _, c := range stories {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
		b.WriteString("\n")
	}
	if len(warnings) > 0 {
		fmt.Fprintf(&b, "INDUSTRY WATCH\n")
		for _, c := range warnings {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Description)
		}
		b.WriteString("\n")
	}

	if data.Rival.Introduced {
		fmt.Fprintf(&b, "ACROSS THE STREET\n")
		if f, ok := data.Rival.LastFilm(); ok {
			fmt.Fprintf(&b, "Nova Pictures released %s, a %s picture, to a %s reception.\n", f.Title, f.Genre, f.Verdict)
		}
		fmt.Fprintf(&b, "Nova's standing in town: %d.\n\n", data.Rival.Reputation)
	}

	fmt.Fprintf(&b, "STUDIO LEDGER\n")
	fmt.Fprintf(&b, "%s reputation %d, treasury %d.\n", consequence.StudioName, data.Reputation, data.Treasury)
	if data.Style != "" {
		fmt.Fprintf(&b, "Around town they call you %s.\n", data.Style)
	}

	return b.String()
}
