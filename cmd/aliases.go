// file: cmd/aliases.go
// version: 1.0.0
// guid: 0d6b3f8a-2e9c-4a5d-8f1b-4c7e0a3d6b9f

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/frenchtools/cj/internal/grammar"
	"github.com/spf13/cobra"
)

// aliasesCmd lists every accepted tense and person shorthand.
var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List accepted person and tense aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := grammar.NewResolver()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Persons:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, p := range grammar.Persons() {
			aliases := resolver.PersonAliases(p)
			if len(aliases) == 0 {
				fmt.Fprintf(tw, "  %s\t\n", p)
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\n", p, strings.Join(aliases, ", "))
		}
		tw.Flush()

		fmt.Fprintln(w, "\nTenses:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, ti := range resolver.Tenses() {
			fmt.Fprintf(tw, "  %s\t%s\n", ti.Name, strings.Join(ti.Aliases, ", "))
		}
		tw.Flush()
		return nil
	},
}
