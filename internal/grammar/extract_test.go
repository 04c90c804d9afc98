// file: internal/grammar/extract_test.go
// version: 1.0.0
// guid: 9a4c7e2b-5d8f-4b1a-8c6e-3f9b2d7a5c0e

package grammar

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return &Table{
		Verb: VerbInfo{Infinitive: "manger", TranslationEN: "eat"},
		Moods: []Mood{
			{Name: "infinitif", Rows: []Row{
				{Tense: "infinitif-présent", Forms: []string{"manger"}},
			}},
			{Name: "indicatif", Rows: []Row{
				{Tense: "présent", Forms: []string{"mange", "manges", "mange", "mangeons", "mangez", "mangent"}},
				{Tense: "imparfait", Forms: []string{"mangeais", "mangeais", "mangeait", "mangions", "mangiez", "mangeaient"}},
			}},
			{Name: "imperatif", Rows: []Row{
				{Tense: "imperatif-présent", Forms: []string{"mange", "mangeons", "mangez"}},
			}},
			{Name: "participe", Rows: []Row{
				{Tense: "participe-passé", Forms: []string{"mangé", "mangée", "mangés", "mangées"}},
			}},
		},
	}
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver()
	require.NoError(t, err)
	return r
}

func TestExtractFullRow(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	form, ok := r.Extract(table, "indicatif", "présent", Tu)
	require.True(t, ok)
	assert.Equal(t, "manges", form)

	form, ok = r.Extract(table, "indicatif", "présent", Ils)
	require.True(t, ok)
	assert.Equal(t, "mangent", form)
}

func TestExtractImperativeRow(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	form, ok := r.Extract(table, "imperatif", "imperatif-présent", Nous)
	require.True(t, ok)
	assert.Equal(t, "mangeons", form)

	// je/il/ils have no imperative.
	_, ok = r.Extract(table, "imperatif", "imperatif-présent", Je)
	assert.False(t, ok)
	_, ok = r.Extract(table, "imperatif", "imperatif-présent", Ils)
	assert.False(t, ok)
}

func TestExtractImpersonalRowIgnoresPerson(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	for _, p := range Persons() {
		form, ok := r.Extract(table, "participe", "participe-passé", p)
		require.True(t, ok, "person %s", p)
		assert.Equal(t, "mangé", form)
	}
}

func TestExtractMissingRow(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	_, ok := r.Extract(table, "indicatif", "futur-simple", Je)
	assert.False(t, ok)
	_, ok = r.Extract(table, "subjonctif", "présent", Je)
	assert.False(t, ok)
}

func TestExtractMalformedRow(t *testing.T) {
	r := newTestResolver(t)
	table := &Table{Moods: []Mood{
		{Name: "indicatif", Rows: []Row{
			// Five forms in a six-person row: malformed, never indexed.
			{Tense: "présent", Forms: []string{"a", "b", "c", "d", "e"}},
		}},
	}}

	_, ok := r.Extract(table, "indicatif", "présent", Je)
	assert.False(t, ok)
}

// Resolve j' -> je and fut -> futur simple, then pull one form out of a
// minimal table.
func TestResolveAndExtractScenario(t *testing.T) {
	r := newTestResolver(t)

	p, ok := r.ResolvePerson("j")
	require.True(t, ok)
	assert.Equal(t, Je, p)

	ti, ok := r.ResolveTense("fut")
	require.True(t, ok)
	assert.Equal(t, "futur simple", ti.Name)
	assert.Equal(t, "indicatif", ti.Mood)
	assert.Equal(t, "futur-simple", ti.Tense)

	table := &Table{Moods: []Mood{
		{Name: "indicatif", Rows: []Row{
			{Tense: "présent", Forms: []string{"a", "b", "c", "d", "e", "f"}},
		}},
	}}
	tu, ok := r.ResolvePerson("tu")
	require.True(t, ok)
	form, ok := r.Extract(table, "indicatif", "présent", tu)
	require.True(t, ok)
	assert.Equal(t, "b", form)
}

func TestFormsForPerson(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	var got []PersonForm
	for pf := range r.FormsForPerson(table, Nous) {
		got = append(got, pf)
	}
	want := []PersonForm{
		{Mood: "indicatif", Tense: "présent", Form: "mangeons"},
		{Mood: "indicatif", Tense: "imparfait", Form: "mangions"},
		{Mood: "imperatif", Tense: "imperatif-présent", Form: "mangeons"},
	}
	assert.Equal(t, want, got)
}

func TestFormsForPersonSkipsImperativeForOtherPersons(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	var moods []string
	for pf := range r.FormsForPerson(table, Il) {
		moods = append(moods, pf.Mood)
	}
	assert.Equal(t, []string{"indicatif", "indicatif"}, moods)
}

func TestFormsForPersonRestartable(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()
	seq := r.FormsForPerson(table, Je)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestFormsForPersonSkipsMalformedRows(t *testing.T) {
	r := newTestResolver(t)
	table := &Table{Moods: []Mood{
		{Name: "indicatif", Rows: []Row{
			{Tense: "présent", Forms: []string{"a", "b"}},
			{Tense: "imparfait", Forms: []string{"a", "b", "c", "d", "e", "f"}},
		}},
	}}

	got := slices.Collect(r.FormsForPerson(table, Je))
	require.Len(t, got, 1)
	assert.Equal(t, "imparfait", got[0].Tense)
}

func TestAllRows(t *testing.T) {
	r := newTestResolver(t)
	table := testTable()

	rows := slices.Collect(r.AllRows(table))
	require.Len(t, rows, 5)

	// Table order is preserved: infinitif first, participe last.
	assert.Equal(t, "infinitif", rows[0].Mood)
	assert.Equal(t, ShapeImpersonal, rows[0].Shape)
	require.Len(t, rows[0].Forms, 1)
	assert.False(t, rows[0].Forms[0].Personal)
	assert.Equal(t, "manger", rows[0].Forms[0].Text)

	present := rows[1]
	assert.Equal(t, ShapeFull, present.Shape)
	require.Len(t, present.Forms, 6)
	for i, f := range present.Forms {
		assert.True(t, f.Personal)
		assert.Equal(t, Person(i), f.Person)
	}

	imp := rows[3]
	assert.Equal(t, ShapeImperative, imp.Shape)
	require.Len(t, imp.Forms, 3)
	assert.Equal(t, Tu, imp.Forms[0].Person)
	assert.Equal(t, Nous, imp.Forms[1].Person)
	assert.Equal(t, Vous, imp.Forms[2].Person)

	part := rows[4]
	assert.Equal(t, ShapeImpersonal, part.Shape)
	assert.Len(t, part.Forms, 4)
	for _, f := range part.Forms {
		assert.False(t, f.Personal)
	}
}

func TestAllRowsSkipsMalformedRow(t *testing.T) {
	r := newTestResolver(t)
	table := &Table{Moods: []Mood{
		{Name: "imperatif", Rows: []Row{
			{Tense: "imperatif-présent", Forms: []string{"a", "b"}},
		}},
		{Name: "indicatif", Rows: []Row{
			{Tense: "présent", Forms: []string{"a", "b", "c", "d", "e", "f"}},
		}},
	}}

	rows := slices.Collect(r.AllRows(table))
	require.Len(t, rows, 1)
	assert.Equal(t, "indicatif", rows[0].Mood)
}

func TestImperativeSlot(t *testing.T) {
	for p, want := range map[Person]int{Tu: 0, Nous: 1, Vous: 2} {
		slot, ok := p.ImperativeSlot()
		require.True(t, ok)
		assert.Equal(t, want, slot)
	}
	for _, p := range []Person{Je, Il, Ils} {
		_, ok := p.ImperativeSlot()
		assert.False(t, ok)
	}
}
