// file: cmd/query.go
// version: 1.0.0
// guid: 8f3a6d1c-4b7e-4e2a-9c5d-1f8b3a6e9d2c

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/frenchtools/cj/internal/cache"
	"github.com/frenchtools/cj/internal/config"
	"github.com/frenchtools/cj/internal/conjugator"
	"github.com/frenchtools/cj/internal/grammar"
)

// queryKind selects one of the four query shapes. The shape is decided here,
// once, from the argument pattern; the core packages only ever receive a
// disambiguated query.
type queryKind int

const (
	queryAll queryKind = iota
	queryPerson
	querySpecific
	queryImpersonal
)

type query struct {
	kind   queryKind
	verb   string
	person grammar.Person
	tense  grammar.TenseInfo
}

func parseQuery(r *grammar.Resolver, args []string) (query, error) {
	switch len(args) {
	case 1:
		return query{kind: queryAll, verb: args[0]}, nil
	case 2:
		if p, ok := r.ResolvePerson(args[0]); ok {
			return query{kind: queryPerson, verb: args[1], person: p}, nil
		}
		// Not a person: accept <verb> <tense> when the tense has no person.
		if ti, ok := r.ResolveTense(args[1]); ok && r.RowShape(ti.Mood, ti.Tense) == grammar.ShapeImpersonal {
			return query{kind: queryImpersonal, verb: args[0], tense: ti}, nil
		}
		return query{}, fmt.Errorf("unknown person %q (valid: je, tu, il/elle/on, nous, vous, ils/elles)", args[0])
	case 3:
		p, ok := r.ResolvePerson(args[0])
		if !ok {
			return query{}, fmt.Errorf("unknown person %q (valid: je, tu, il/elle/on, nous, vous, ils/elles)", args[0])
		}
		ti, ok := r.ResolveTense(args[2])
		if !ok {
			return query{}, fmt.Errorf("unknown tense %q (run 'cj aliases' for the full list)", args[2])
		}
		if r.RowShape(ti.Mood, ti.Tense) == grammar.ShapeImpersonal {
			// Participles and infinitives have no person; drop it.
			return query{kind: queryImpersonal, verb: args[1], tense: ti}, nil
		}
		return query{kind: querySpecific, verb: args[1], person: p, tense: ti}, nil
	}
	return query{}, fmt.Errorf("expected 1 to 3 arguments")
}

// cacheArgs builds the ordered key tuple for a query. Each query shape is
// its own entry so partial views never shadow the full table.
func cacheArgs(q query) []string {
	switch q.kind {
	case queryAll:
		return []string{q.verb, "all"}
	case queryPerson:
		return []string{q.verb, "person", q.person.String()}
	case querySpecific:
		return []string{q.verb, "specific", q.person.String(), q.tense.Name}
	default:
		return []string{q.verb, "impersonal", q.tense.Name}
	}
}

// newProvider is a hook so tests can substitute the network client.
var newProvider = func() conjugator.Provider {
	return conjugator.NewClient(config.AppConfig.ProviderURL, config.AppConfig.RequestTimeout)
}

// lookupTable returns the conjugation table for a query, from cache when
// possible, otherwise from the provider (caching the fresh result).
func lookupTable(q query) (*grammar.Table, error) {
	store := cache.Open(
		config.AppConfig.CacheDir,
		cache.NamespaceConjugation,
		config.AppConfig.NamespaceMaxAge(cache.NamespaceConjugation),
	)
	args := cacheArgs(q)

	if !noCache {
		if raw, ok := store.Get(args...); ok {
			var t grammar.Table
			if err := json.Unmarshal(raw, &t); err == nil {
				return &t, nil
			}
			log.Printf("Warning: discarding undecodable cache entry for %q", q.verb)
		}
	}

	table, err := newProvider().Conjugate(q.verb)
	if err != nil {
		return nil, err
	}
	if !noCache {
		store.Set(table, args...)
	}
	return table, nil
}

func runQuery(w io.Writer, args []string) error {
	resolver, err := grammar.NewResolver()
	if err != nil {
		return err
	}
	q, err := parseQuery(resolver, args)
	if err != nil {
		return err
	}

	table, err := lookupTable(q)
	if err != nil {
		if errors.Is(err, conjugator.ErrUnknownVerb) {
			fmt.Fprintf(w, "No conjugations found for %q\n", q.verb)
			return nil
		}
		return err
	}

	switch q.kind {
	case queryAll:
		renderAll(w, resolver, table)
	case queryPerson:
		renderPerson(w, resolver, table, q.person)
	case querySpecific:
		form, ok := resolver.Extract(table, q.tense.Mood, q.tense.Tense, q.person)
		if !ok {
			fmt.Fprintf(w, "No conjugation found for %q in %s\n", q.person, q.tense.Name)
			return nil
		}
		fmt.Fprintf(w, "%s  [%s, %s]\n", form, q.person, q.tense.Name)
	case queryImpersonal:
		form, ok := resolver.Extract(table, q.tense.Mood, q.tense.Tense, grammar.Je)
		if !ok {
			fmt.Fprintf(w, "No conjugation found for %s\n", q.tense.Name)
			return nil
		}
		fmt.Fprintf(w, "%s  [%s]\n", form, q.tense.Name)
	}
	return nil
}
