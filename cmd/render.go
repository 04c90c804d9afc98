// file: cmd/render.go
// version: 1.0.0
// guid: 2c9e5b1f-7d4a-4f8c-b3e6-9a1d5c7f2b4e

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/frenchtools/cj/internal/grammar"
)

// renderAll prints the whole table, mood by mood, with each form beside its
// person when the row has one.
func renderAll(w io.Writer, r *grammar.Resolver, t *grammar.Table) {
	currentMood := ""
	for row := range r.AllRows(t) {
		if row.Mood != currentMood {
			currentMood = row.Mood
			fmt.Fprintf(w, "\n=== %s ===\n", strings.ToUpper(currentMood))
		}
		fmt.Fprintf(w, "%s\n", row.Tense)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range row.Forms {
			if f.Personal {
				fmt.Fprintf(tw, "  %s\t%s\n", f.Person, f.Text)
			} else {
				fmt.Fprintf(tw, "  —\t%s\n", f.Text)
			}
		}
		tw.Flush()
	}
	if t.Verb.Infinitive != "" {
		fmt.Fprintf(w, "\nInfinitif: %s", t.Verb.Infinitive)
		if t.Verb.TranslationEN != "" {
			fmt.Fprintf(w, " | EN: %s", t.Verb.TranslationEN)
		}
		fmt.Fprintln(w)
	}
}

// renderPerson prints every tense's form for one person.
func renderPerson(w io.Writer, r *grammar.Resolver, t *grammar.Table, p grammar.Person) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	found := false
	for pf := range r.FormsForPerson(t, p) {
		fmt.Fprintf(tw, "%s %s\t%s\n", pf.Mood, pf.Tense, pf.Form)
		found = true
	}
	tw.Flush()
	if !found {
		fmt.Fprintf(w, "No conjugations found for person %q\n", p)
	}
}
