// file: internal/grammar/resolver.go
// version: 1.2.0
// guid: 9e5b3c7d-2f8a-4d1b-b6e4-0a9c7f5d3b8e

package grammar

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// TenseInfo describes one canonical mood/tense combination: its display name,
// the shorthand it answers to, and where its row lives in a Table.
type TenseInfo struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Mood    string   `yaml:"mood"`
	Tense   string   `yaml:"tense"`
}

type tableData struct {
	Persons         map[string][]string `yaml:"persons"`
	ImperativeMoods []string            `yaml:"imperative_moods"`
	ImpersonalMoods []string            `yaml:"impersonal_moods"`
	Tenses          []TenseInfo         `yaml:"tenses"`
}

// Resolver canonicalizes free-form person and tense tokens and navigates
// conjugation tables. Its alias tables are fixed at construction and never
// change afterwards.
type Resolver struct {
	personAliases   [len(personNames)][]string
	tenses          []TenseInfo
	imperativeMoods map[string]bool
	impersonalMoods map[string]bool
}

// NewResolver builds a resolver from the embedded grammar tables.
func NewResolver() (*Resolver, error) {
	var data tableData
	if err := yaml.Unmarshal(tablesYAML, &data); err != nil {
		return nil, fmt.Errorf("grammar tables: %w", err)
	}
	if len(data.Tenses) == 0 {
		return nil, fmt.Errorf("grammar tables: no tenses declared")
	}

	r := &Resolver{
		tenses:          data.Tenses,
		imperativeMoods: make(map[string]bool, len(data.ImperativeMoods)),
		impersonalMoods: make(map[string]bool, len(data.ImpersonalMoods)),
	}
	for name, aliases := range data.Persons {
		p, ok := personByName(name)
		if !ok {
			return nil, fmt.Errorf("grammar tables: unknown person %q", name)
		}
		normalized := make([]string, len(aliases))
		for i, a := range aliases {
			normalized[i] = Normalize(a)
		}
		r.personAliases[p] = normalized
	}
	for i, ti := range r.tenses {
		if ti.Name == "" || ti.Mood == "" || ti.Tense == "" {
			return nil, fmt.Errorf("grammar tables: tense %d is incomplete", i)
		}
		for j, a := range ti.Aliases {
			r.tenses[i].Aliases[j] = Normalize(a)
		}
	}
	for _, m := range data.ImperativeMoods {
		r.imperativeMoods[m] = true
	}
	for _, m := range data.ImpersonalMoods {
		r.impersonalMoods[m] = true
	}
	return r, nil
}

func personByName(name string) (Person, bool) {
	for i, n := range personNames {
		if n == name {
			return Person(i), true
		}
	}
	return 0, false
}

// Normalize prepares a token for alias matching: Unicode NFC so composed and
// decomposed accents compare equal, then lower-case and trim.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// ResolvePerson maps a surface token to its canonical person. Matching is
// exact, never fuzzy; persons are scanned in declaration order so an alias
// that somehow appeared twice would resolve to the earlier one.
func (r *Resolver) ResolvePerson(input string) (Person, bool) {
	in := Normalize(input)
	if in == "" {
		return 0, false
	}
	for _, p := range Persons() {
		if p.String() == in {
			return p, true
		}
		for _, a := range r.personAliases[p] {
			if a == in {
				return p, true
			}
		}
	}
	return 0, false
}

// ResolveTense maps a surface token to its canonical tense, with the same
// contract as ResolvePerson.
func (r *Resolver) ResolveTense(input string) (TenseInfo, bool) {
	in := Normalize(input)
	if in == "" {
		return TenseInfo{}, false
	}
	for _, ti := range r.tenses {
		if Normalize(ti.Name) == in {
			return ti, true
		}
		for _, a := range ti.Aliases {
			if a == in {
				return ti, true
			}
		}
	}
	return TenseInfo{}, false
}

// Tenses returns the canonical tenses in declaration order.
func (r *Resolver) Tenses() []TenseInfo {
	out := make([]TenseInfo, len(r.tenses))
	copy(out, r.tenses)
	return out
}

// PersonAliases returns the accepted shorthand for a person, normalized.
func (r *Resolver) PersonAliases(p Person) []string {
	if p < 0 || int(p) >= len(r.personAliases) {
		return nil
	}
	out := make([]string, len(r.personAliases[p]))
	copy(out, r.personAliases[p])
	return out
}

// RowShape reports how the row at mood/tense aligns forms to persons. The
// classification is keyed on the mood's declared identity, never inferred
// from a row's length.
func (r *Resolver) RowShape(mood, tense string) Shape {
	switch {
	case r.imperativeMoods[mood]:
		return ShapeImperative
	case r.impersonalMoods[mood]:
		return ShapeImpersonal
	default:
		return ShapeFull
	}
}
