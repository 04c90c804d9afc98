// file: internal/grammar/grammar.go
// version: 1.1.0
// guid: 3f8a2b1c-9d4e-4f6a-8b2c-5e7d9a1f3c6b

package grammar

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Person identifies one of the six canonical French grammatical persons.
// The numeric value doubles as the row index in a six-form conjugation.
type Person int

const (
	Je Person = iota
	Tu
	Il
	Nous
	Vous
	Ils
)

var personNames = [...]string{"je", "tu", "il", "nous", "vous", "ils"}

func (p Person) String() string {
	if p < 0 || int(p) >= len(personNames) {
		return fmt.Sprintf("person(%d)", int(p))
	}
	return personNames[p]
}

// Persons returns the canonical persons in declaration order.
func Persons() []Person {
	return []Person{Je, Tu, Il, Nous, Vous, Ils}
}

// imperativeOrder fixes which persons a three-form imperative row carries,
// and in which slots.
var imperativeOrder = [3]Person{Tu, Nous, Vous}

// ImperativeSlot returns p's index in an imperative row, or false for the
// three persons the imperative does not conjugate.
func (p Person) ImperativeSlot() (int, bool) {
	for i, q := range imperativeOrder {
		if p == q {
			return i, true
		}
	}
	return 0, false
}

// Shape classifies how one mood/tense row aligns its forms to persons.
type Shape int

const (
	// ShapeFull rows carry six forms, one per canonical person.
	ShapeFull Shape = iota
	// ShapeImperative rows carry three forms: tu, nous, vous.
	ShapeImperative
	// ShapeImpersonal rows carry one or more forms with no person at all.
	ShapeImpersonal
)

func (s Shape) String() string {
	switch s {
	case ShapeFull:
		return "full"
	case ShapeImperative:
		return "imperative"
	case ShapeImpersonal:
		return "impersonal"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// VerbInfo is the metadata block the provider returns alongside a table.
type VerbInfo struct {
	Infinitive    string `json:"infinitive"`
	TranslationEN string `json:"translation_en,omitempty"`
}

// Row is one tense's ordered list of conjugated forms.
type Row struct {
	Tense string
	Forms []string
}

// Mood groups the rows of one grammatical mood, in document order.
type Mood struct {
	Name string
	Rows []Row
}

// Table is the full conjugation result for one verb. Mood and tense order is
// kept as the provider emitted it, never sorted, so walking the table matches
// the provider's own layout.
type Table struct {
	Verb  VerbInfo
	Moods []Mood
}

// Forms returns the row stored under a mood/tense pair.
func (t *Table) Forms(mood, tense string) ([]string, bool) {
	for _, m := range t.Moods {
		if m.Name != mood {
			continue
		}
		for _, r := range m.Rows {
			if r.Tense == tense {
				return r.Forms, true
			}
		}
		return nil, false
	}
	return nil, false
}

// MarshalJSON writes the table back out in the provider's wire layout,
// preserving mood and tense order.
func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"verb":`)
	verb, err := json.Marshal(t.Verb)
	if err != nil {
		return nil, err
	}
	buf.Write(verb)
	buf.WriteString(`,"moods":{`)
	for i, m := range t.Moods {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(":{")
		for j, r := range m.Rows {
			if j > 0 {
				buf.WriteByte(',')
			}
			tense, err := json.Marshal(r.Tense)
			if err != nil {
				return nil, err
			}
			buf.Write(tense)
			buf.WriteByte(':')
			forms, err := json.Marshal(r.Forms)
			if err != nil {
				return nil, err
			}
			buf.Write(forms)
		}
		buf.WriteByte('}')
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the provider's wire layout. A streaming decoder is
// used instead of map decoding so the document's mood and tense order
// survives the round trip.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("conjugation payload: %w", err)
	}
	*t = Table{}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return fmt.Errorf("conjugation payload: %w", err)
		}
		switch key {
		case "verb":
			if err := dec.Decode(&t.Verb); err != nil {
				return fmt.Errorf("conjugation payload: verb block: %w", err)
			}
		case "moods":
			moods, err := decodeMoods(dec)
			if err != nil {
				return fmt.Errorf("conjugation payload: %w", err)
			}
			t.Moods = moods
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return fmt.Errorf("conjugation payload: field %q: %w", key, err)
			}
		}
	}
	_, err := dec.Token()
	return err
}

func decodeMoods(dec *json.Decoder) ([]Mood, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var moods []Mood
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		rows, err := decodeRows(dec)
		if err != nil {
			return nil, fmt.Errorf("mood %q: %w", name, err)
		}
		moods = append(moods, Mood{Name: name, Rows: rows})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return moods, nil
}

func decodeRows(dec *json.Decoder) ([]Row, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var rows []Row
	for dec.More() {
		tense, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		var forms []string
		if err := dec.Decode(&forms); err != nil {
			return nil, fmt.Errorf("tense %q: %w", tense, err)
		}
		rows = append(rows, Row{Tense: tense, Forms: forms})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rows, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}
