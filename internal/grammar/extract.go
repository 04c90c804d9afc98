// file: internal/grammar/extract.go
// version: 1.1.0
// guid: 4d7f1a9b-8c3e-4b6d-a2f5-6e9c0b4d8a1f

package grammar

import (
	"iter"
	"log"
)

// PersonForm is one conjugated form of a verb for a fixed person.
type PersonForm struct {
	Mood  string
	Tense string
	Form  string
}

// Form is a conjugated form, tagged with its person when the row shape
// defines one.
type Form struct {
	Text     string
	Person   Person
	Personal bool
}

// TableRow is one mood/tense row with every form paired to its person.
type TableRow struct {
	Mood  string
	Tense string
	Shape Shape
	Forms []Form
}

// wellFormed reports whether a row's length matches its declared shape.
func wellFormed(shape Shape, n int) bool {
	switch shape {
	case ShapeFull:
		return n == len(personNames)
	case ShapeImperative:
		return n == len(imperativeOrder)
	default:
		return n >= 1
	}
}

func warnMalformed(shape Shape, mood, tense string, n int) {
	log.Printf("Warning: malformed %s row %s/%s has %d forms, skipping", shape, mood, tense, n)
}

// Extract returns the single form at mood/tense for the given person.
// Impersonal rows ignore the person and yield their first form. A missing
// row, a person the shape does not admit, or a malformed row all come back
// as not found.
func (r *Resolver) Extract(t *Table, mood, tense string, person Person) (string, bool) {
	forms, ok := t.Forms(mood, tense)
	if !ok {
		return "", false
	}
	shape := r.RowShape(mood, tense)
	if !wellFormed(shape, len(forms)) {
		warnMalformed(shape, mood, tense, len(forms))
		return "", false
	}
	switch shape {
	case ShapeImpersonal:
		return forms[0], true
	case ShapeImperative:
		slot, ok := person.ImperativeSlot()
		if !ok {
			return "", false
		}
		return forms[slot], true
	default:
		if person < 0 || int(person) >= len(forms) {
			return "", false
		}
		return forms[person], true
	}
}

// FormsForPerson walks every personal row in table order and yields the form
// belonging to the given person. Impersonal rows are skipped outright: they
// have no person to match. Imperative rows are skipped for the three persons
// the imperative does not conjugate. The sequence is restartable.
func (r *Resolver) FormsForPerson(t *Table, person Person) iter.Seq[PersonForm] {
	return func(yield func(PersonForm) bool) {
		for _, m := range t.Moods {
			for _, row := range m.Rows {
				shape := r.RowShape(m.Name, row.Tense)
				if shape == ShapeImpersonal {
					continue
				}
				if !wellFormed(shape, len(row.Forms)) {
					warnMalformed(shape, m.Name, row.Tense, len(row.Forms))
					continue
				}
				var form string
				if shape == ShapeImperative {
					slot, ok := person.ImperativeSlot()
					if !ok {
						continue
					}
					form = row.Forms[slot]
				} else {
					form = row.Forms[person]
				}
				if !yield(PersonForm{Mood: m.Name, Tense: row.Tense, Form: form}) {
					return
				}
			}
		}
	}
}

// AllRows walks the whole table in its own order, pairing each form with its
// canonical person according to the row's shape. Malformed rows are logged
// and skipped so one bad row cannot hide the rest of the table.
func (r *Resolver) AllRows(t *Table) iter.Seq[TableRow] {
	return func(yield func(TableRow) bool) {
		for _, m := range t.Moods {
			for _, row := range m.Rows {
				shape := r.RowShape(m.Name, row.Tense)
				if !wellFormed(shape, len(row.Forms)) {
					warnMalformed(shape, m.Name, row.Tense, len(row.Forms))
					continue
				}
				out := TableRow{
					Mood:  m.Name,
					Tense: row.Tense,
					Shape: shape,
					Forms: make([]Form, 0, len(row.Forms)),
				}
				switch shape {
				case ShapeFull:
					for i, f := range row.Forms {
						out.Forms = append(out.Forms, Form{Text: f, Person: Person(i), Personal: true})
					}
				case ShapeImperative:
					for i, f := range row.Forms {
						out.Forms = append(out.Forms, Form{Text: f, Person: imperativeOrder[i], Personal: true})
					}
				default:
					for _, f := range row.Forms {
						out.Forms = append(out.Forms, Form{Text: f})
					}
				}
				if !yield(out) {
					return
				}
			}
		}
	}
}
